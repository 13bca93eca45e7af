//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cafe-menu-service/internal/handler/middleware"
	"cafe-menu-service/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *jwt.Service, minRole middleware.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(svc)
	r.GET("/menus", auth.RequireAuth(), auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		cafeID, _ := middleware.GetCafeID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"cafe_id": cafeID.String(), "role": string(role)})
	})
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/menus", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	cafeID := uuid.New()

	token, err := svc.GenerateToken(uuid.New(), cafeID, string(middleware.RoleEditor))
	require.NoError(t, err)
	expired, err := jwt.NewService("test-secret", -time.Minute).GenerateToken(uuid.New(), cafeID, string(middleware.RoleEditor))
	require.NoError(t, err)
	foreign, err := jwt.NewService("other-secret", time.Hour).GenerateToken(uuid.New(), cafeID, string(middleware.RoleEditor))
	require.NoError(t, err)
	noCafe, err := svc.GenerateToken(uuid.New(), uuid.Nil, string(middleware.RoleEditor))
	require.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		minRole    middleware.Role
		expectCode int
		expectBody string
	}{
		{name: "success: editor passes viewer routes", header: "Bearer " + token, minRole: middleware.RoleViewer, expectCode: http.StatusOK, expectBody: cafeID.String()},
		{name: "success: editor passes editor routes", header: "Bearer " + token, minRole: middleware.RoleEditor, expectCode: http.StatusOK},
		{name: "error: editor blocked from manager routes", header: "Bearer " + token, minRole: middleware.RoleManager, expectCode: http.StatusForbidden, expectBody: "Insufficient permissions"},
		{name: "error: missing header", minRole: middleware.RoleViewer, expectCode: http.StatusUnauthorized, expectBody: "Access token required"},
		{name: "error: wrong scheme", header: "Basic " + token, minRole: middleware.RoleViewer, expectCode: http.StatusUnauthorized, expectBody: "Access token required"},
		{name: "error: expired token", header: "Bearer " + expired, minRole: middleware.RoleViewer, expectCode: http.StatusUnauthorized, expectBody: "Invalid or expired token"},
		{name: "error: token signed with another key", header: "Bearer " + foreign, minRole: middleware.RoleViewer, expectCode: http.StatusUnauthorized},
		{name: "error: token without cafe", header: "Bearer " + noCafe, minRole: middleware.RoleViewer, expectCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(newRouter(svc, tc.minRole), tc.header)
			assert.Equal(t, tc.expectCode, w.Code, w.Body.String())
			if tc.expectBody != "" {
				assert.Contains(t, w.Body.String(), tc.expectBody)
			}
		})
	}
}

func TestRequireRoleAtLeast_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(jwt.NewService("test-secret", time.Hour))
	r.GET("/menus", auth.RequireRoleAtLeast(middleware.RoleViewer), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestIdentityAccessors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := middleware.GetCafeID(c)
	assert.False(t, ok)

	userID, cafeID := uuid.New(), uuid.New()
	middleware.SetIdentity(c, userID, cafeID, middleware.RoleManager)

	gotUser, ok := middleware.GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotUser)
	gotCafe, ok := middleware.GetCafeID(c)
	require.True(t, ok)
	assert.Equal(t, cafeID, gotCafe)
	role, ok := middleware.GetUserRole(c)
	require.True(t, ok)
	assert.Equal(t, middleware.RoleManager, role)

	middleware.SetIdentity(c, userID, uuid.Nil, middleware.RoleManager)
	_, ok = middleware.GetCafeID(c)
	assert.False(t, ok)
}
