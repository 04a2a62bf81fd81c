package httpx

import "time"

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

type RetryOption func(*RetryRoundTripper)

func WithMaxAttempts(maxAttempts int) RetryOption {
	return func(rt *RetryRoundTripper) {
		rt.maxAttempts = maxAttempts
	}
}

func WithAttemptTimeout(timeout time.Duration) RetryOption {
	return func(rt *RetryRoundTripper) {
		rt.attemptTimeout = timeout
	}
}

func WithBackoff(initialDelay, maxDelay time.Duration, multiple float64) RetryOption {
	return func(rt *RetryRoundTripper) {
		rt.initialDelay = initialDelay
		rt.maxDelay = maxDelay
		rt.backoffMultiple = multiple
	}
}
