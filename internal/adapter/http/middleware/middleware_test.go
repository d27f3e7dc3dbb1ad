package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vetcare/internal/usecase/interfaces"
	mock_interfaces "vetcare/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body.Code
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	t.Run("generates new", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		if seen == "" || w.Header().Get(RequestIDHeader) != seen {
			t.Fatalf("expected generated id in context and header, got %q / %q", seen, w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("preserves existing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "my-custom-id")
		w := serve(r, req)
		if seen != "my-custom-id" || w.Header().Get(RequestIDHeader) != "my-custom-id" {
			t.Fatalf("expected my-custom-id, got %q", seen)
		}
	})
}

func TestLogger_LogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(zerolog.New(&buf)))
	r.GET("/bookings", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one JSON line, got %q", buf.String())
	}
	if line["path"] != "/bookings" || line["status"] != float64(404) || line["level"] != "warn" {
		t.Errorf("unexpected access log: %v", line)
	}
	if line["request_id"] == "" {
		t.Errorf("expected request_id in access log")
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(Recovery(zerolog.New(&buf)))
	r.GET("/panic", func(c *gin.Context) { panic("test panic") })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if code := decodeCode(t, w); code != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR, got %s", code)
	}
	if strings.Contains(w.Body.String(), "test panic") {
		t.Errorf("panic detail leaked to client: %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "test panic") {
		t.Errorf("expected panic to be logged")
	}

	if w := serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil)); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestTimeout(20 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) {
		if _, ok := c.Request.Context().Deadline(); !ok {
			t.Errorf("expected a deadline on the request context")
		}
		c.Status(http.StatusOK)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil))
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", w.Code)
	}
	if code := decodeCode(t, w); code != "TIMEOUT" {
		t.Errorf("expected TIMEOUT, got %s", code)
	}

	if w := serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil)); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(v interfaces.IAccessVerifier) *gin.Engine {
		r := gin.New()
		r.Use(Authorize(v))
		r.GET("/", func(c *gin.Context) {
			p := c.MustGet(PrincipalKey).(interfaces.Principal)
			c.String(http.StatusOK, p.Subject)
		})
		return r
	}

	t.Run("passes the bearer token to the verifier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		v := mock_interfaces.NewMockIAccessVerifier(ctrl)
		v.EXPECT().Verify(gomock.Any(), "abc.def").Return(interfaces.Principal{Subject: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc.def")
		w := serve(newRouter(v), req)
		if w.Code != http.StatusOK || w.Body.String() != "user-1" {
			t.Fatalf("expected 200 user-1, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("unauthenticated is 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		v := mock_interfaces.NewMockIAccessVerifier(ctrl)
		v.EXPECT().Verify(gomock.Any(), "").Return(interfaces.Principal{}, interfaces.ErrUnauthenticated)

		w := serve(newRouter(v), httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if code := decodeCode(t, w); code != "UNAUTHORIZED" {
			t.Errorf("expected UNAUTHORIZED, got %s", code)
		}
	})

	t.Run("verifier failure is 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		v := mock_interfaces.NewMockIAccessVerifier(ctrl)
		v.EXPECT().Verify(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) (interfaces.Principal, error) {
			return interfaces.Principal{}, errors.New("directory unavailable")
		})

		w := serve(newRouter(v), httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"abc":          "abc",
		"":             "",
	}
	for in, want := range tests {
		if got := bearerToken(in); got != want {
			t.Errorf("bearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}
