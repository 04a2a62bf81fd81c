package logx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"numclass/pkg/logx"
)

func TestNew(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		level    string
		format   string
		wantErr  bool
		contains string
	}{
		{
			name:     "JSON info",
			level:    "info",
			format:   logx.FormatJSON,
			contains: `"msg":"hello"`,
		},
		{
			name:     "Text debug",
			level:    "DEBUG",
			format:   logx.FormatText,
			contains: "hello",
		},
		{
			name:    "Unknown level",
			level:   "loud",
			format:  logx.FormatJSON,
			wantErr: true,
		},
		{
			name:    "Unknown format",
			level:   "info",
			format:  "xml",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var buf bytes.Buffer

			logger, err := logx.New(&buf, tc.level, tc.format)
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)

			logger.Info("hello")

			rq.Contains(buf.String(), tc.contains)
		})
	}
}
