package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"zenflow/internal/core/domain"
	"zenflow/pkg/apierrors"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type identityMock struct {
	mock.Mock
}

func (m *identityMock) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *identityMock) Login(ctx context.Context, email, password string) (domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *identityMock) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *identityMock) CurrentSession(ctx context.Context, userID string) (domain.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *identityMock) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

func newAuthRouter(identity *identityMock) *gin.Engine {
	r := gin.New()
	r.GET("/private", LanguageMiddleware(), BearerAuth(identity), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return r
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	identity := new(identityMock)
	rec := httptest.NewRecorder()
	newAuthRouter(identity).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusUnauthorized, got.ErrDetails.Code)
	identity.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	identity := new(identityMock)
	identity.On("Authenticate", mock.Anything, "bad").Return(domain.User{}, domain.ErrInvalidToken).Once()

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	newAuthRouter(identity).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	identity.AssertExpectations(t)
}

func TestBearerAuth_StoresUser(t *testing.T) {
	identity := new(identityMock)
	identity.On("Authenticate", mock.Anything, "good").Return(domain.User{ID: "u1"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	newAuthRouter(identity).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":"u1"}`, rec.Body.String())
	identity.AssertExpectations(t)
}

func TestLanguageMiddleware_Negotiates(t *testing.T) {
	r := gin.New()
	r.GET("/lang", LanguageMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, GetLang(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/lang", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, "fr", rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lang", nil))
	require.Equal(t, "en", rec.Body.String())
}

func TestSimulatedLatency_Delays(t *testing.T) {
	r := gin.New()
	r.GET("/slow", SimulatedLatency(30*time.Millisecond), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	start := time.Now()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSimulatedLatency_StopsOnCancel(t *testing.T) {
	called := false
	r := gin.New()
	r.GET("/slow", SimulatedLatency(time.Hour), func(c *gin.Context) {
		called = true
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil).WithContext(ctx))

	require.False(t, called)
}

func TestRedisRateLimit_NilClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.GET("/test", RedisRateLimit(nil, 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

// Integration-style test: runs only if REDIS_ADDR env is set.
func TestRedisRateLimitIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD"), DB: db})
	defer client.Close()

	window := 2 * time.Second
	limit := 2
	route := "/rl-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	r := gin.New()
	r.GET(route, RedisRateLimit(client, limit, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < limit; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route, nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestGinZapMiddleware_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(LanguageMiddleware(), GinZapMiddleware(zap.New(core)))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/health", "/boom", "/ok"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, zapcore.InfoLevel, entries[2].Level)
	require.Equal(t, "/ok", entries[2].ContextMap()["route"])
}
