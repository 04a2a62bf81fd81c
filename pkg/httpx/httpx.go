package httpx

import "numclass/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
