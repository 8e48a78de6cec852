package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHandler(t *testing.T) {
	t.Parallel()

	a := &API{}
	rec := httptest.NewRecorder()
	a.RootHandler(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "API is running...", rec.Body.String())
}

func TestNotFoundHandler(t *testing.T) {
	t.Parallel()

	a := &API{}
	rec := httptest.NewRecorder()
	a.NotFoundHandler(rec, httptest.NewRequest("GET", "/api/nope", nil))

	assert.Equal(t, 404, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not Found - /api/nope", body["message"])
	assert.Nil(t, body["stack"])
}
