package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/testutil"
	"go-product-catalog/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*fiber.App, *jwt.Manager, *model.User) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	users := repository.NewUserRepo(db)
	privileges := repository.NewPrivilegeRepo(db)
	require.NoError(t, privileges.SeedDefaults(ctx))
	view, err := privileges.FindByCodes(ctx, []string{model.PrivilegeCatalogView})
	require.NoError(t, err)

	user := &model.User{Email: "viewer@example.com", IsActive: true, Privileges: view, TokenVersion: "v1"}
	require.NoError(t, user.SetPassword("pw"))
	require.NoError(t, users.Create(ctx, user))

	tokens := jwt.NewManager("secret", time.Hour, "catalog")
	app := fiber.New()
	app.Use(RequireAuth(tokens, users))
	app.Get("/view", RequirePrivilege(model.PrivilegeCatalogView), func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/write", RequirePrivilege(model.PrivilegeCatalogWrite), func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app, tokens, user
}

func get(t *testing.T, app *fiber.App, path, auth string) int {
	req := httptest.NewRequest("GET", path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRequireAuth(t *testing.T) {
	app, tokens, user := setup(t)
	token, err := tokens.GenerateToken(user.ID, user.Email, "", nil, "v1")
	require.NoError(t, err)
	stale, err := tokens.GenerateToken(user.ID, user.Email, "", nil, "v0")
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/view", ""))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/view", "Token "+token))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/view", "Bearer nope"))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/view", "Bearer "+stale))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/view", "Bearer "+token))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/write", "Bearer "+token))
}
