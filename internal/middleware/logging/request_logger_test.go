package loggingmw

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/cart_service/internal/logging"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var last []byte
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		last = append([]byte(nil), sc.Bytes()...)
	}
	require.NotEmpty(t, last)

	var m map[string]any
	require.NoError(t, json.Unmarshal(last, &m))
	return m
}

func TestRequestLogger_InjectsLoggerAndLogsStatus(t *testing.T) {
	var buf bytes.Buffer
	base := logging.NewWithWriter(&buf, "info")

	e := echo.New()
	e.Use(RequestLogger(base))
	e.POST("/addToCart", func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Info("inside handler")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/addToCart", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rid-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"msg":"inside handler"`)

	line := lastLine(t, &buf)
	assert.Equal(t, "request completed", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "rid-1", line["request_id"])
	assert.EqualValues(t, http.StatusOK, line["status"])
}

func TestRequestLogger_HandlerErrorIsRendered(t *testing.T) {
	var buf bytes.Buffer
	base := logging.NewWithWriter(&buf, "info")

	e := echo.New()
	e.Use(RequestLogger(base))
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	line := lastLine(t, &buf)
	assert.Equal(t, "ERROR", line["level"])
	assert.EqualValues(t, http.StatusBadRequest, line["status"])
}

func TestRequestLogger_CartUserParam(t *testing.T) {
	var buf bytes.Buffer
	base := logging.NewWithWriter(&buf, "info")

	e := echo.New()
	e.Use(RequestLogger(base))
	e.DELETE("/emptyCart/:userId", func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/emptyCart/42", nil))

	line := lastLine(t, &buf)
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "/emptyCart/:userId", line["route"])
	assert.Equal(t, "42", line["user_id"])
	assert.NotContains(t, line, "error")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(http.StatusOK, nil))
	assert.Equal(t, slog.LevelWarn, levelFor(http.StatusConflict, nil))
	assert.Equal(t, slog.LevelError, levelFor(http.StatusInternalServerError, nil))
	assert.Equal(t, slog.LevelError, levelFor(http.StatusOK, echo.ErrBadRequest))
}
