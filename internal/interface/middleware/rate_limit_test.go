package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testCtx(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/login", nil)
	return c, w
}

func TestKeyByIPAndPath(t *testing.T) {
	c, _ := testCtx(t)
	c.Set("real_ip", "203.0.113.7")

	key := KeyByIPAndPath()(c)
	assert.Equal(t, "rl:path:/api/auth/login:ip:203.0.113.7", key)
}

func TestAllowPrivateIP(t *testing.T) {
	tests := []struct {
		ip    string
		allow bool
	}{
		{"127.0.0.1", true},
		{"10.0.0.5", true},
		{"192.168.1.20", true},
		{"172.16.0.1", true},
		{"::1", true},
		{"203.0.113.7", false},
		{"8.8.8.8", false},
		{"not-an-ip", false},
	}
	allow := AllowPrivateIP()
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			c, _ := testCtx(t)
			c.Set("real_ip", tt.ip)
			assert.Equal(t, tt.allow, allow(c))
		})
	}
}

func TestRateLimitNilRedisIsNoop(t *testing.T) {
	c, w := testCtx(t)

	h := RateLimit(nil, 10, 0, KeyByIPAndPath(), nil)
	h(c)

	assert.False(t, c.IsAborted())
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRealIPHeaderPrecedence(t *testing.T) {
	c, _ := testCtx(t)
	c.Request.Header.Set("CF-Connecting-IP", "203.0.113.7")
	c.Request.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")

	RealIP()(c)
	assert.Equal(t, "203.0.113.7", c.GetString("real_ip"))

	c2, _ := testCtx(t)
	c2.Request.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	RealIP()(c2)
	assert.Equal(t, "198.51.100.1", c2.GetString("real_ip"))
}

func TestRequestIDHonorsInbound(t *testing.T) {
	c, w := testCtx(t)
	c.Request.Header.Set("X-Request-ID", "fixed-id")

	RequestID()(c)
	assert.Equal(t, "fixed-id", c.GetString("request_id"))
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))

	c2, w2 := testCtx(t)
	RequestID()(c2)
	assert.NotEmpty(t, c2.GetString("request_id"))
	assert.Equal(t, c2.GetString("request_id"), w2.Header().Get("X-Request-ID"))
}
