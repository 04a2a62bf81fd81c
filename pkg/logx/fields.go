package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldAttempt         = "attempt"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldErrorCode       = "error-code"
	FieldFactOutcome     = "fact-outcome"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldNumber          = "number"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTaskID          = "task-id"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUserAgent       = "user-agent"
)
