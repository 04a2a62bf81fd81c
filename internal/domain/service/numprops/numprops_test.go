package numprops_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"numclass/internal/domain/service/numprops"
	"numclass/pkg/tests"
)

func TestIsPrime(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		n    int64
		want bool
	}{
		{math.MinInt64, false},
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{17, true},
		{25, false},
		{97, true},
		{7919, true},
		{1_000_000_007, true},
		{1_000_000_008, false},
		{math.MaxInt64, false}, // 7^2 * 73 * ...
	}

	for _, tc := range testCases {
		rq.Equal(tc.want, numprops.IsPrime(tc.n), "n=%d", tc.n)
	}
}

func TestIsPrimeMatchesSieve(t *testing.T) {
	rq := require.New(t)

	const limit = 10_000

	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}

		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	for n := 2; n <= limit; n++ {
		rq.Equal(!composite[n], numprops.IsPrime(int64(n)), "n=%d", n)
	}
}

func TestIsPerfect(t *testing.T) {
	rq := require.New(t)

	perfect := map[int64]bool{6: true, 28: true, 496: true, 8128: true}

	for n := int64(-10); n <= 10_000; n++ {
		rq.Equal(perfect[n], numprops.IsPerfect(n), "n=%d", n)
	}
}

func TestIsPerfectContextCanceled(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()

	_, err := numprops.IsPerfectContext(ctx, math.MaxInt64)
	rq.ErrorIs(err, context.DeadlineExceeded)
	rq.Less(time.Since(start), 5*time.Second)
}

func TestIsPrimeContextCanceled(t *testing.T) {
	rq := require.New(t)

	// Наибольшее простое в int64: перебор до sqrt без отмены занимает секунды.
	const largestPrime = 9223372036854775783

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()

	_, err := numprops.IsPrimeContext(ctx, largestPrime)
	rq.ErrorIs(err, context.DeadlineExceeded)
	rq.Less(time.Since(start), 2*time.Second)
}

func TestIsPrimeContext(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Короткий перебор не доходит до проверки контекста.
	for n, want := range map[int64]bool{-7: false, 1: false, 2: true, 17: true, 91: false} {
		ok, err := numprops.IsPrimeContext(ctx, n)
		rq.NoError(err)
		rq.Equal(want, ok, "n=%d", n)
	}
}

func TestIsPerfectContextNonPositive(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, n := range []int64{0, -6, math.MinInt64} {
		ok, err := numprops.IsPerfectContext(ctx, n)
		rq.NoError(err)
		rq.False(ok)
	}
}

func TestIsArmstrong(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		n    int64
		want bool
	}{
		{0, true},
		{1, true},
		{9, true},
		{10, false},
		{153, true},
		{154, false},
		{370, true},
		{371, true},
		{407, true},
		{9474, true},
		{-153, true},
		{-154, false},
		{4_679_307_774, true},
		{math.MaxInt64, false},
		{math.MinInt64, false},
	}

	for _, tc := range testCases {
		rq.Equal(tc.want, numprops.IsArmstrong(tc.n), "n=%d", tc.n)
	}
}

func TestDigitSum(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		n    int64
		want int
	}{
		{0, 0},
		{7, 7},
		{123, 6},
		{-123, 6},
		{1_000_000, 1},
		{math.MaxInt64, 88},
		{math.MinInt64, 89},
	}

	for _, tc := range testCases {
		rq.Equal(tc.want, numprops.DigitSum(tc.n), "n=%d", tc.n)
	}
}

func TestIsEven(t *testing.T) {
	rq := require.New(t)
	rnd := tests.NewRandomizer()

	for range 1000 {
		n := rnd.Int64n(math.MaxInt64)
		if rnd.Bool() {
			n = -n
		}

		rq.Equal(n%2 == 0, numprops.IsEven(n), "n=%d", n)
		rq.Equal(numprops.DigitSum(n), numprops.DigitSum(-n), "n=%d", n)
	}

	rq.True(numprops.IsEven(0))
	rq.False(numprops.IsEven(-5))
	rq.True(numprops.IsEven(math.MinInt64))
}

func TestAbs(t *testing.T) {
	rq := require.New(t)

	rq.Equal(uint64(0), numprops.Abs(0))
	rq.Equal(uint64(5), numprops.Abs(-5))
	rq.Equal(uint64(math.MaxInt64), numprops.Abs(math.MaxInt64))
	rq.Equal(uint64(math.MaxInt64)+1, numprops.Abs(math.MinInt64))
}

func TestDigits(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]int{0}, numprops.Digits(0))
	rq.Equal([]int{1, 5, 3}, numprops.Digits(153))
	rq.Equal([]int{1, 8, 4, 4, 6, 7, 4, 4, 0, 7, 3, 7, 0, 9, 5, 5, 1, 6, 1, 5}, numprops.Digits(math.MaxUint64))
}
