package controller

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/chainscope/timeline/pkg/family"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWritePageStatusAndBody(t *testing.T) {
	w := httptest.NewRecorder()
	writePage(w, family.Blocks, []string{"a", "b"})

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"payload":["a","b"]`)
	assert.Contains(t, w.Body.String(), `"type":"blocks"`)
}

func TestWriteNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	writeNotFound(w)
	assert.Equal(t, 404, w.Code)
}

func TestWriteConflict(t *testing.T) {
	w := httptest.NewRecorder()
	writeConflict(w, "bad anchor")
	assert.Equal(t, 409, w.Code)
	assert.Contains(t, w.Body.String(), "bad anchor")
}

func TestWriteErrorMapsInvalidArgumentTo409(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, zap.NewNop(), queryerr.InvalidArgument("nope"))
	assert.Equal(t, 409, w.Code)
}

func TestWriteErrorMapsNotFoundTo404(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, zap.NewNop(), queryerr.NotFound("missing"))
	assert.Equal(t, 404, w.Code)
}

func TestWriteErrorMapsInternalTo500(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, zap.NewNop(), queryerr.Internal("store down", errors.New("boom")))
	assert.Equal(t, 500, w.Code)
}

func TestWriteErrorMapsUnclassifiedTo500(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, zap.NewNop(), errors.New("plain error"))
	assert.Equal(t, 500, w.Code)
}
