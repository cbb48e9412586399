package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	err := Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestInvalidRequestBody(t *testing.T) {
	_, c, rec := setupEcho()

	err := InvalidRequestBody(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeInvalidRequest, result.Code)
	assert.Equal(t, MsgInvalidRequestBody, result.Message)
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()

	err := ValidationError(c, "outbound_date must use YYYY-MM-DD format")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, "outbound_date must use YYYY-MM-DD format", result.Message)
}

func TestToolNotFound(t *testing.T) {
	_, c, rec := setupEcho()

	err := ToolNotFound(c, `unknown tool: "search_hotels"`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeToolNotFound, result.Code)
	assert.Contains(t, result.Message, "search_hotels")
}

func TestMissingCredential(t *testing.T) {
	_, c, rec := setupEcho()

	err := MissingCredential(c, "missing credential: SERPAPI_API_KEY is not set")

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeMissingCredential, result.Code)
	assert.Contains(t, result.Message, "SERPAPI_API_KEY")
}

func TestUpstreamError(t *testing.T) {
	_, c, rec := setupEcho()

	err := UpstreamError(c, "serpapi_google_flights returned status 500")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeUpstreamError, result.Code)
}

func TestGatewayTimeout(t *testing.T) {
	_, c, rec := setupEcho()

	err := GatewayTimeout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeTimeout, result.Code)
	assert.Equal(t, MsgTimeout, result.Message)
}

func TestRequestCancelled(t *testing.T) {
	_, c, rec := setupEcho()

	err := RequestCancelled(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeTimeout, result.Code)
	assert.Equal(t, MsgRequestCancelled, result.Message)
}

func TestInternalServerError(t *testing.T) {
	_, c, rec := setupEcho()

	err := InternalServerError(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeInternalError, result.Code)
	assert.Equal(t, MsgInternalError, result.Message)
}

func TestOK(t *testing.T) {
	_, c, rec := setupEcho()

	payload := struct {
		Tools []string `json:"tools"`
	}{
		Tools: []string{"get_weather_forecast", "roll_dice", "search_flights"},
	}

	err := OK(c, payload)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tools []string `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Tools, 3)
}
