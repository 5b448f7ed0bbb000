package validators

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"min=8"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func TestStruct(t *testing.T) {
	errs := Struct(sample{Password: "short", Email: "nope"})
	assert.Equal(t, map[string]string{
		"username": "username is required!",
		"password": "password must be at least 8 characters long!",
		"email":    "Invalid email!",
	}, errs)

	assert.Empty(t, Struct(sample{Username: "ada", Password: "12345678"}))
}

func TestParamID(t *testing.T) {
	app := fiber.New()
	app.Get("/courses/:course_id", ParamID("course_id", "courseID"), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals("courseID"))
	})

	for path, want := range map[string]int{
		"/courses/7":   fiber.StatusOK,
		"/courses/0":   fiber.StatusUnprocessableEntity,
		"/courses/-1":  fiber.StatusUnprocessableEntity,
		"/courses/abc": fiber.StatusUnprocessableEntity,
	} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}
