package queryerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	ia := InvalidArgument("bad anchor")
	assert.Equal(t, ClassInvalidArgument, ia.Class)
	assert.Equal(t, "bad anchor", ia.Error())

	nf := NotFound("no such record")
	assert.Equal(t, ClassNotFound, nf.Class)

	wrapped := errors.New("connection refused")
	internal := Internal("store unavailable", wrapped)
	assert.Equal(t, ClassInternal, internal.Class)
	assert.Contains(t, internal.Error(), "store unavailable")
	assert.Contains(t, internal.Error(), "connection refused")
	assert.Equal(t, wrapped, internal.Unwrap())
}

func TestAsFindsDirectError(t *testing.T) {
	err := NotFound("missing")
	qerr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, ClassNotFound, qerr.Class)
}

func TestAsUnwrapsWrappedError(t *testing.T) {
	inner := InvalidArgument("malformed integer")
	outer := fmt.Errorf("parsing anchor: %w", inner)

	qerr, ok := As(outer)
	assert.True(t, ok)
	assert.Equal(t, ClassInvalidArgument, qerr.Class)
}

func TestAsReturnsFalseForPlainError(t *testing.T) {
	_, ok := As(errors.New("just a plain error"))
	assert.False(t, ok)
}
