// Package numprops содержит чистые предикаты над целыми числами.
// Все функции тотальны на int64: не паникуют и не переполняются.
package numprops

import (
	"context"
	"math"
)

// ctxCheckEvery как часто переборы делителей смотрят на контекст
const ctxCheckEvery = 1 << 16

// Abs модуль числа без переполнения на math.MinInt64
func Abs(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}

	return uint64(n)
}

// IsPrime пробное деление на все i от 2 до floor(sqrt(n)) включительно
func IsPrime(n int64) bool {
	ok, _ := IsPrimeContext(context.Background(), n) //nolint:errcheck // background never cancels

	return ok
}

// IsPrimeContext то же, что IsPrime, но прерывается по ctx.
// Для простого числа около MaxInt64 перебор идёт порядка 3e9 итераций.
func IsPrimeContext(ctx context.Context, n int64) (bool, error) {
	if n <= 1 {
		return false, nil
	}

	u := uint64(n)
	for i := uint64(2); i*i <= u; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return false, err //nolint:wrapcheck
			}
		}

		if u%i == 0 {
			return false, nil
		}
	}

	return true, nil
}

// IsPerfect наивная сумма собственных делителей из [1, n), O(n).
func IsPerfect(n int64) bool {
	ok, _ := IsPerfectContext(context.Background(), n) //nolint:errcheck // background never cancels

	return ok
}

// IsPerfectContext то же, что IsPerfect, но прерывается по ctx.
func IsPerfectContext(ctx context.Context, n int64) (bool, error) {
	if n <= 0 {
		return false, nil
	}

	var sum int64

	for i := int64(1); i < n; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return false, err //nolint:wrapcheck
			}
		}

		if n%i != 0 {
			continue
		}

		sum += i
		// Сумма уже больше n, дальше только растёт.
		if sum > n {
			return false, nil
		}
	}

	return sum == n, nil
}

// IsArmstrong сумма цифр |n| в степени количества цифр равна |n|
func IsArmstrong(n int64) bool {
	abs := Abs(n)
	digits := Digits(abs)
	k := len(digits)

	var sum uint64

	for _, d := range digits {
		p, ok := pow(uint64(d), k)
		if !ok || p > abs-sum {
			return false
		}

		sum += p
	}

	return sum == abs
}

// IsEven чётность по исходному знаковому значению
func IsEven(n int64) bool {
	return n%2 == 0
}

// DigitSum сумма десятичных цифр |n|
func DigitSum(n int64) int {
	sum := 0
	for _, d := range Digits(Abs(n)) {
		sum += d
	}

	return sum
}

// Digits десятичные цифры от старшей к младшей, для 0 это [0]
func Digits(u uint64) []int {
	if u == 0 {
		return []int{0}
	}

	var reversed []int
	for ; u > 0; u /= 10 {
		reversed = append(reversed, int(u%10))
	}

	digits := make([]int, len(reversed))
	for i, d := range reversed {
		digits[len(reversed)-1-i] = d
	}

	return digits
}

// pow возвращает false, если результат не помещается в uint64
func pow(base uint64, exp int) (uint64, bool) {
	result := uint64(1)

	for range exp {
		if base != 0 && result > math.MaxUint64/base {
			return 0, false
		}

		result *= base
	}

	return result, true
}
