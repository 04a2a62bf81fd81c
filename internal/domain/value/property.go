package value

type Property string

const (
	PropertyArmstrong Property = "armstrong"
	PropertyEven      Property = "even"
	PropertyOdd       Property = "odd"
)

func (p Property) String() string {
	return string(p)
}
