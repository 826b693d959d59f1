package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, CodeInternal, "list users failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal: list users failed: connection reset", err.Error())
	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeNotFound))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"app error", New(CodeConflict, "dup"), CodeConflict},
		{"wrapped app error", fmt.Errorf("outer: %w", New(CodeNotFound, "missing")), CodeNotFound},
		{"plain error", errors.New("boom"), CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "User with email 'a@x.com' already exists.",
		MessageOf(Newf(CodeConflict, "User with email '%s' already exists.", "a@x.com")))
	assert.Equal(t, "boom", MessageOf(errors.New("boom")))
	assert.Equal(t, "", MessageOf(nil))
}

func TestWithMeta(t *testing.T) {
	err := New(CodeInvalid, "bad").WithMeta("field", "email")
	assert.Equal(t, "email", err.Meta["field"])
}
