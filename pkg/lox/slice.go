package lox

// Map работает как lo.Map, но iteratee не получает индекс, поэтому
// сюда можно передать method expression вроде value.Property.String.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}
