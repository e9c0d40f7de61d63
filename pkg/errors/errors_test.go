package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitCodeOK},
		{"usage error", NewExitError(ExitCodeUsage, "usage"), ExitCodeUsage},
		{"no go files", NewExitError(ExitCodeNoGoFiles, ErrMsgNoGoFiles), ExitCodeNoGoFiles},
		{"unexpected as typed", NewExitError(ExitCodeUnexpected, ErrMsgUnexpected), ExitCodeUnexpected},
		{"untyped error", fmt.Errorf("boom"), ExitCodeUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	req := require.New(t)

	err := NewExitError(ExitCodeNoGoFiles, ErrMsgNoGoFiles)
	req.Equal(ErrMsgNoGoFiles, err.Error())
}

func TestExitCodesDistinct(t *testing.T) {
	req := require.New(t)

	codes := []int{ExitCodeOK, ExitCodeUsage, ExitCodeUnexpected, ExitCodeNoGoFiles}
	seen := make(map[int]bool)
	for _, code := range codes {
		req.False(seen[code], "exit code %d reused", code)
		seen[code] = true
	}
}
