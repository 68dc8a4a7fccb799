package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// requestWithLogger puts a logger writing to buf into the request context the
// same way withTraceID does.
func requestWithLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		response     string
		wantContains []string
	}{
		{
			name:     "GET 200",
			method:   http.MethodGet,
			path:     "/locais?tipo=cafe",
			status:   http.StatusOK,
			response: "[]",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/locais?tipo=cafe"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
				`"level":"info"`,
				`"route":"unmatched"`,
			},
		},
		{
			name:   "DELETE 404",
			method: http.MethodDelete,
			path:   "/locais/" + testPlaceID,
			status: http.StatusNotFound,
			wantContains: []string{
				`"method":"DELETE"`,
				`"status":404`,
				`"size":0`,
				`"level":"warn"`,
			},
		},
		{
			name:     "GET 500",
			method:   http.MethodGet,
			path:     "/locations",
			status:   http.StatusInternalServerError,
			response: `{"erro":"StoreError"}`,
			wantContains: []string{
				`"status":500`,
				`"level":"error"`,
			},
		},
		{
			name:     "POST 201",
			method:   http.MethodPost,
			path:     "/usuarios",
			status:   http.StatusCreated,
			response: `{"id":"x"}`,
			wantContains: []string{
				`"status":201`,
				`"size":10`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.response != "" {
					_, _ = w.Write([]byte(tt.response))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, requestWithLogger(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, logBuf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, requestWithLogger(http.MethodGet, "/locations", &logBuf))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
	assert.Contains(t, logBuf.String(), `"size":1024`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusNotModified))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusUnauthorized))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusServiceUnavailable))
}
