package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkup/internal/auth"
)

type fakeStore struct {
	blocked map[string]bool
}

func (f *fakeStore) AddBlacklist(_ context.Context, token string, _ time.Duration) error {
	f.blocked[token] = true
	return nil
}

func (f *fakeStore) InBlacklist(_ context.Context, token string) (bool, error) {
	return f.blocked[token], nil
}

func newRouter(tm *auth.TokenManager, store auth.TokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tm, store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	tm := auth.NewTokenManager("mw-secret", time.Hour)
	r := newRouter(tm, nil)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Basic abc").Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	tm := auth.NewTokenManager("mw-secret", time.Hour)
	r := newRouter(tm, nil)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer garbage").Code)

	expired := auth.NewTokenManager("mw-secret", -time.Hour)
	token, err := expired.Issue(1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+token).Code)
}

func TestAuth_ValidToken(t *testing.T) {
	tm := auth.NewTokenManager("mw-secret", time.Hour)
	r := newRouter(tm, nil)

	token, err := tm.Issue(7)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
}

func TestAuth_BlacklistedToken(t *testing.T) {
	tm := auth.NewTokenManager("mw-secret", time.Hour)
	store := &fakeStore{blocked: map[string]bool{}}
	r := newRouter(tm, store)

	token, err := tm.Issue(7)
	require.NoError(t, err)
	require.NoError(t, store.AddBlacklist(context.Background(), token, time.Hour))

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+token).Code)
}
