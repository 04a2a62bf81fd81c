package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidNumber failure.ErrorCode = "InvalidNumber"

	// Ошибки внешнего сервиса фактов, наружу не отдаются.
	FactLookupFailed  failure.ErrorCode = "FactLookupFailed"
	FactMalformed     failure.ErrorCode = "FactMalformed"
	FactBadStatus     failure.ErrorCode = "FactBadStatus"
	FactCacheFailed   failure.ErrorCode = "FactCacheFailed"
	FactEnqueueFailed failure.ErrorCode = "FactEnqueueFailed"
)
