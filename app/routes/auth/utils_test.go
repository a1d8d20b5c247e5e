package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicorai90/lca/app/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("12345678")
	require.NoError(t, err)
	assert.NotEqual(t, "12345678", hash)

	assert.True(t, CheckPasswordHash("12345678", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("u1", "12345678", models.RoleTeacher)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)

	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "12345678", claims.Username)
	assert.Equal(t, models.RoleTeacher, claims.Role)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func protectedApp(roles ...models.Role) *fiber.App {
	app := fiber.New()
	app.Get("/api/protected", AuthMiddleware, RoleMiddleware(roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": CallerRole(c), "username": CallerUsername(c)})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := protectedApp(models.RoleSecretary)

	req := httptest.NewRequest("GET", "/api/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	app := protectedApp(models.RoleSecretary)

	token, err := GenerateJWT("u1", "12345678", models.RoleSecretary)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	app := protectedApp(models.RoleSecretary)

	token, err := GenerateJWT("u1", "12345678", models.RoleSecretary)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRoleMiddlewareForbidsWrongRole(t *testing.T) {
	app := protectedApp(models.RoleSecretary)

	token, err := GenerateJWT("u2", "87654321", models.RoleTeacher)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestRoleMiddlewareAllowsAnyListedRole(t *testing.T) {
	app := protectedApp(models.RoleSecretary, models.RoleTeacher)

	for _, role := range []models.Role{models.RoleSecretary, models.RoleTeacher} {
		token, err := GenerateJWT("u3", "11111111", role)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}
}
