package receiverflow

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepTables(t *testing.T) {
	t.Run("next walks forward and stops at END", func(t *testing.T) {
		step := StepEmailAuth
		var seen []VerifyStep
		for {
			seen = append(seen, step)
			n, ok := Next(step)
			if !ok {
				break
			}
			step = n
		}
		assert.Equal(t, []VerifyStep{StepEmailAuth, StepMasterKeyAuth, StepUploadPDFAuth, StepEnd}, seen)
	})

	t.Run("previous is the inverse of next", func(t *testing.T) {
		for from, to := range nextStep {
			back, ok := Previous(to)
			assert.True(t, ok)
			assert.Equal(t, from, back)
		}
		_, ok := Previous(StepEmailAuth)
		assert.False(t, ok)
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "UPLOAD_PDF_AUTH", StepUploadPDFAuth.String())
		assert.Equal(t, "UNKNOWN", VerifyStep(99).String())
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
		msg  string
	}{
		{"server message passes through", &APIError{Status: 400, Code: "bad_request", Message: "invalid master key"}, ErrorServer, "invalid master key"},
		{"api error without message", &APIError{Status: 502}, ErrorUnknown, messageUnknown},
		{"transport failure", &url.Error{Op: "Post", URL: "http://x", Err: errors.New("connection refused")}, ErrorNetwork, messageNetwork},
		{"deadline", context.DeadlineExceeded, ErrorNetwork, messageNetwork},
		{"anything else", errors.New("unexpected EOF in json"), ErrorUnknown, messageUnknown},
		{"already classified", required("master key is required"), ErrorRequired, "master key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.msg, got.Message)
		})
	}
	assert.Nil(t, Classify(nil))
}
