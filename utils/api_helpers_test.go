package utils

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	RespondJSON(rec, 201, map[string]string{"message": "created"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "created", body["message"])
}

func TestRespondError_EnvelopeShape(t *testing.T) {
	t.Parallel()

	var logger strings.Builder
	rec := httptest.NewRecorder()
	RespondError(rec, &logger, "Order not found", 404)

	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, logger.String(), "Order not found")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Order not found", body["message"])

	stack, present := body["stack"]
	assert.True(t, present, "stack field must always be present")
	assert.Nil(t, stack)
}

func TestRespondErrorWithStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		suppress  bool
		wantStack bool
	}{
		{name: "development includes stack", suppress: false, wantStack: true},
		{name: "production suppresses stack", suppress: true, wantStack: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			RespondErrorWithStack(rec, nil, "boom", "goroutine 1 [running]", tc.suppress)

			assert.Equal(t, 500, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "boom", body["message"])
			if tc.wantStack {
				assert.Equal(t, "goroutine 1 [running]", body["stack"])
			} else {
				assert.Nil(t, body["stack"])
			}
		})
	}
}

func TestAddToLogMessage(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	AddToLogMessage(&b, "[Test API]")
	AddToLogMessage(&b, "something happened")

	assert.Equal(t, "[Test API];\nsomething happened;\n", b.String())
}
