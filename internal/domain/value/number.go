package value

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`^-?[0-9]+$`) //nolint:gochecknoglobals

var (
	ErrNumberMissing   = errors.New("number is missing")
	ErrNumberMalformed = errors.New("number is not an integer")
	ErrNumberRange     = errors.New("number is out of int64 range")
)

// Number целое число из запроса, может быть отрицательным.
type Number int64

func (n Number) Int64() int64 {
	return int64(n)
}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// ParseNumber принимает необязательный минус и одну или больше десятичных цифр.
// nil означает, что параметр не передан.
func ParseNumber(raw *string) (Number, error) {
	if raw == nil || *raw == "" {
		return 0, ErrNumberMissing
	}

	if !numberPattern.MatchString(*raw) {
		return 0, fmt.Errorf("%w: %q", ErrNumberMalformed, *raw)
	}

	n, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumberRange, *raw)
	}

	return Number(n), nil
}
