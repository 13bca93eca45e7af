//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"cafe-menu-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// ErrorDetails decodes the detail list of an error response.
func ErrorDetails(t *testing.T, w *httptest.ResponseRecorder) []errs.Detail {
	t.Helper()

	var errorResponse struct {
		Detail []errs.Detail `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResponse), "Failed to decode error response JSON: %s", w.Body.String())
	return errorResponse.Detail
}

func AssertErrorCodes(t *testing.T, w *httptest.ResponseRecorder, expectedCodes ...string) {
	t.Helper()

	details := ErrorDetails(t, w)
	codes := make([]string, len(details))
	for i, d := range details {
		codes[i] = d.Code
	}
	assert.ElementsMatch(t, expectedCodes, codes)
}
