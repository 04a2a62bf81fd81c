package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Headers.
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile("(?is)(X-Api-Key: ).+?(\r)"),
	// JSON fields.
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	regexp.MustCompile(`(?s)("apiKey":\s?").+?(")`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
