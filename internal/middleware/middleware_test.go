package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	rl := &RateLimiter{
		seen:    make(map[string][]time.Time),
		limit:   2,
		window:  time.Minute,
		nowFunc: func() time.Time { return now },
	}

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// Other clients have their own window
	assert.True(t, rl.Allow("10.0.0.2"))

	// Once the window slides past the first requests the client recovers
	now = now.Add(time.Minute + time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimit(1, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	doGet := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, doGet().Code)

	second := doGet()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "test-secret"

	r := gin.New()
	r.Use(Auth(secret))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("subject")})
	})

	doGet := func(authorization string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token passes with subject", func(t *testing.T) {
		token, err := IssueToken(secret, "admin")
		require.NoError(t, err)

		w := doGet("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin")
	})

	t.Run("missing header rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet("").Code)
	})

	t.Run("wrong scheme rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet("Basic abc").Code)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		token, err := IssueToken("other-secret", "admin")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doGet("Bearer "+token).Code)
	})
}
