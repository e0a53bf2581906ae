// Package testutil builds gin contexts and decodes envelopes for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/gate"
	"ispdesk/internal/shared/constants"
	"ispdesk/internal/shared/logger"
	sharedtestutil "ispdesk/internal/shared/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext returns a context for calling a handler method directly.
// A non-nil body is sent as JSON.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, reader)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

// SetGateContext stores what the gate middleware would after validating a cookie.
func SetGateContext(c *gin.Context, sessionID string, state gate.State) {
	c.Set(constants.ContextKeySessionID, sessionID)
	c.Set(constants.ContextKeyGateState, state)
}

func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func SetQueryParams(c *gin.Context, params map[string]string) {
	q := make(url.Values, len(params))
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// DecodeList unwraps a successful list envelope.
func DecodeList(t testing.TB, w *httptest.ResponseRecorder) ListData {
	t.Helper()

	var resp APIResponse
	require.NoError(t, ParseResponse(w, &resp))
	require.True(t, resp.Success, "expected success envelope, got %s", w.Body.String())

	var data ListData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

// APIResponse is utils.APIResponse with Data left undecoded.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListData is utils.ListResponse with Items left undecoded.
type ListData struct {
	Items  json.RawMessage `json:"items"`
	Total  int             `json:"total"`
	Count  int             `json:"count"`
	Search string          `json:"search,omitempty"`
}

func NewMockLogger() logger.Interface {
	return sharedtestutil.NewMockLogger()
}
