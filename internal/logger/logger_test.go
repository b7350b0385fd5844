package logger

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(orig) })
	return &buf
}

func testContext(path string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, path, nil)
	c.Set("request_id", "req-123")
	return c
}

func TestInfoFormatsFields(t *testing.T) {
	buf := captureLog(t)

	Info("Suggestion accepted", Fields{"field": "title", "attempts": 2})

	out := buf.String()
	if !strings.Contains(out, "[INFO] Suggestion accepted") {
		t.Errorf("missing message: %q", out)
	}
	if !strings.Contains(out, "field=title") || !strings.Contains(out, "attempts=2") {
		t.Errorf("missing fields: %q", out)
	}
}

func TestWithContextCarriesRequestIdentity(t *testing.T) {
	c := testContext("/api/suggest")
	c.Set("user_id", "u-42")

	fields := WithContext(c)

	if fields["request_id"] != "req-123" {
		t.Errorf("request_id = %v", fields["request_id"])
	}
	if fields["path"] != "/api/suggest" {
		t.Errorf("path = %v", fields["path"])
	}
	if fields["user_id"] != "u-42" {
		t.Errorf("user_id = %v", fields["user_id"])
	}
}

func TestLogAPIRequestTiersByStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "[INFO]"},
		{http.StatusBadRequest, "[WARN]"},
		{http.StatusInternalServerError, "[ERROR]"},
	}

	for _, tc := range cases {
		buf := captureLog(t)
		LogAPIRequest(testContext("/api/suggest"), 25*time.Millisecond, tc.status, nil)

		out := buf.String()
		if !strings.Contains(out, tc.level) {
			t.Errorf("status %d: expected %s log, got %q", tc.status, tc.level, out)
		}
		if !strings.Contains(out, "/api/suggest") || !strings.Contains(out, "req-123") {
			t.Errorf("status %d: missing request fields: %q", tc.status, out)
		}
	}
}

func TestLogGenerationRequestIncludesUsage(t *testing.T) {
	buf := captureLog(t)

	LogGenerationRequest(context.Background(), "openai", "gpt-4o-mini", 120*time.Millisecond, 100, 40)

	out := buf.String()
	for _, want := range []string{"provider=openai", "model=gpt-4o-mini", "input_tokens=100", "output_tokens=40", "total_tokens=140"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}
