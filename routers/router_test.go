package routers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) }

func TestRoutesTableIsValid(t *testing.T) {
	require.NoError(t, Validate(Routes()))
}

func TestValidate(t *testing.T) {
	cases := map[string][]Route{
		"unknown method": {{Method: "FETCH", Path: "/a", Handlers: []fiber.Handler{ok}}},
		"relative path":  {{Method: fiber.MethodGet, Path: "a", Handlers: []fiber.Handler{ok}}},
		"no handler":     {{Method: fiber.MethodGet, Path: "/a"}},
		"nil handler":    {{Method: fiber.MethodGet, Path: "/a", Handlers: []fiber.Handler{nil}}},
		"duplicate": {
			{Method: fiber.MethodGet, Path: "/a", Handlers: []fiber.Handler{ok}},
			{Method: fiber.MethodGet, Path: "/a", Handlers: []fiber.Handler{ok}},
		},
	}
	for name, routes := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Validate(routes))
		})
	}

	// Same path with another method is fine
	assert.NoError(t, Validate([]Route{
		{Method: fiber.MethodGet, Path: "/a", Handlers: []fiber.Handler{ok}},
		{Method: fiber.MethodPost, Path: "/a", Handlers: []fiber.Handler{ok}},
	}))
}

func TestRegisterRejectsInvalidTableWithoutMounting(t *testing.T) {
	app := fiber.New()
	err := Register(app, []Route{
		{Method: fiber.MethodGet, Path: "/good", Handlers: []fiber.Handler{ok}},
		{Method: fiber.MethodGet, Path: "/good", Handlers: []fiber.Handler{ok}},
	})
	require.Error(t, err)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, Prefix+"/good", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRegisterMountsUnderPrefix(t *testing.T) {
	app := fiber.New()
	require.NoError(t, Register(app, []Route{{Method: fiber.MethodGet, Path: "/ping", Handlers: []fiber.Handler{ok}}}))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, Prefix+"/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
