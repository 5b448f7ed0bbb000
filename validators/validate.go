// Package validators checks request input before it reaches a controller.
// Validated values are handed on through fiber Locals.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"lms/middleware"
	"lms/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the JSON field name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct runs the struct's validate tags and returns field -> message.
// An empty map means the value is valid.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)

	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["body"] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long!", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long!", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", fe.Field(), fe.Param())
	case "email":
		return "Invalid email!"
	case "url":
		return fmt.Sprintf("%s must be a valid URL!", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid!", fe.Field())
	}
}

// ParamID parses a positive integer route parameter into Locals[local].
func ParamID(param, local string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params(param), 10, 64)
		if err != nil || id == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				param: fmt.Sprintf("%s must be a positive integer!", param),
			})
		}
		c.Locals(local, uint(id))
		return c.Next()
	}
}

// IsMultipart reports whether the request carries a multipart form.
func IsMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}

type ListQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Pagination validator middleware; page and limit are optional
func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)
		query := ListQuery{}

		if reqData.Page != nil {
			if *reqData.Page < 1 {
				errors["page"] = "Page must be greater than 0!"
			}
			query.Page = *reqData.Page
		}

		if reqData.Limit != nil {
			if *reqData.Limit < 1 {
				errors["limit"] = "Limit must be greater than 0!"
			}
			query.Limit = *reqData.Limit
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		query.Page, query.Limit = services.Page(query.Page, query.Limit)
		c.Locals("validatedList", query)
		return c.Next()
	}
}
