package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndWrap(t *testing.T) {
	t.Run("new carries code and message", func(t *testing.T) {
		err := New(CodeAlreadyMinted, "account already minted a badge")
		require.Error(t, err)
		assert.True(t, Is(err))
		assert.True(t, HasCode(err, CodeAlreadyMinted))
		assert.Equal(t, CodeAlreadyMinted, CodeOf(err))
		assert.Equal(t, "account already minted a badge", MessageOf(err))
	})

	t.Run("wrap preserves the cause", func(t *testing.T) {
		cause := stderrors.New("connection reset")
		err := Wrap(cause, CodeInternal, "store unavailable")
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, cause))
		assert.True(t, HasCode(err, CodeInternal))
		assert.Contains(t, err.Error(), "connection reset")
		assert.Equal(t, "store unavailable", MessageOf(err))
	})

	t.Run("wrap of nil is nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
	})

	t.Run("domain error survives further wrapping", func(t *testing.T) {
		inner := New(CodeBadgeNotFound, "badge was never issued")
		outer := fmt.Errorf("lookup failed: %w", inner)
		assert.True(t, HasCode(outer, CodeBadgeNotFound))
		assert.Equal(t, CodeBadgeNotFound, CodeOf(outer))
	})
}

func TestNonDomainErrors(t *testing.T) {
	err := stderrors.New("plain failure")
	assert.False(t, Is(err))
	assert.False(t, HasCode(err, CodeInternal))
	assert.Equal(t, CodeInternal, CodeOf(err))
	assert.Equal(t, "internal error", MessageOf(err))
}

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInsufficientScore, http.StatusUnprocessableEntity},
		{CodeScoreBelowMinimum, http.StatusUnprocessableEntity},
		{CodeAlreadyMinted, http.StatusConflict},
		{CodeAlreadyOwnsBadge, http.StatusConflict},
		{CodeNotAuthorized, http.StatusForbidden},
		{CodeSoulboundViolation, http.StatusForbidden},
		{CodeBadgeNotFound, http.StatusNotFound},
		{CodeNoBadge, http.StatusNotFound},
		{CodeBadRequest, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInternal, http.StatusInternalServerError},
		{Code("unmapped"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToHTTPStatus(tc.code), "code %s", tc.code)
	}
}
