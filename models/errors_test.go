package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDomainErrors(t *testing.T) {
	errTaskNotFound := NotFound("task not found")
	t.Run("kind check", func(t *testing.T) {
		require.True(t, errors.Is(errTaskNotFound, ErrNotFound))
		require.False(t, errors.Is(errTaskNotFound, ErrBadRequest))
		require.True(t, errors.Is(BadRequest("nope"), ErrBadRequest))
		require.True(t, errors.Is(Forbidden("nope"), ErrForbidden))
	})
	t.Run("wrapped sentinel check", func(t *testing.T) {
		err := errors.Wrap(errTaskNotFound, "add note")
		require.True(t, errors.Is(err, errTaskNotFound))
		require.True(t, errors.Is(err, ErrNotFound))
		require.Equal(t, "add note: task not found", err.Error())
	})
}
