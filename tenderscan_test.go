package tenderscan_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/tenderscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := tenderscan.Errorf(tenderscan.EMISMATCH, "no %q cell", "SC TO-I")

	assert.Equal(t, tenderscan.EMISMATCH, tenderscan.ErrorCode(err))
	assert.Equal(t, "no \"SC TO-I\" cell", tenderscan.ErrorMessage(err))
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	t.Run("appends cause to message", func(t *testing.T) {
		t.Parallel()

		err := tenderscan.Wrapf(tenderscan.EFETCH, errors.New("HTTP 503"), "fetch index for %s", "0000320193")

		assert.Equal(t, tenderscan.EFETCH, tenderscan.ErrorCode(err))
		assert.Equal(t, "fetch index for 0000320193: HTTP 503", tenderscan.ErrorMessage(err))
	})

	t.Run("exposes cause to errors.Is", func(t *testing.T) {
		t.Parallel()

		err := tenderscan.Wrapf(tenderscan.EFETCH, context.Canceled, "fetch")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tenderscan.ErrorCode(nil))
	})

	t.Run("non-application error is internal", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, tenderscan.EINTERNAL, tenderscan.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tenderscan.ErrorMessage(nil))
}
