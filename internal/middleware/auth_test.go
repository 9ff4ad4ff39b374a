package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learnify_backend/internal/config"
	"learnify_backend/internal/model"
	"learnify_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		util.Success(c, gin.H{"userId": claims.UserID})
	})
	router.GET("/admin", AuthMiddleware(cfg), RoleMiddleware(model.Admin), func(c *gin.Context) {
		util.Success(c, nil)
	})
	return router
}

func signToken(t *testing.T, secret string, role model.UserRole) string {
	t.Helper()
	user := &model.User{Email: "a@b.c", Role: role}
	user.ID = 9
	token, err := util.GenerateJWT(user, secret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	router := newAuthTestRouter(t, cfg)

	tests := []struct {
		name       string
		authHeader string
		query      string
		wantStatus int
	}{
		{"无令牌", "", "", http.StatusUnauthorized},
		{"令牌无效", "Bearer not-a-token", "", http.StatusUnauthorized},
		{"密钥不匹配", "Bearer " + signTokenWithSecret(t, "other-secret"), "", http.StatusUnauthorized},
		{"Header 携带", "Bearer " + signToken(t, cfg.JWT.Secret, model.Student), "", http.StatusOK},
		{"Query 携带", "", "?token=" + signToken(t, cfg.JWT.Secret, model.Student), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected"+tt.query, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func signTokenWithSecret(t *testing.T, secret string) string {
	return signToken(t, secret, model.Student)
}

func TestRoleMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	router := newAuthTestRouter(t, cfg)

	// 学生访问管理员接口被拒
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWT.Secret, model.Student))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 管理员放行
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWT.Secret, model.Admin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
