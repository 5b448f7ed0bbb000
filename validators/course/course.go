package courseValidator

import (
	"mime/multipart"
	"strings"

	"lms/middleware"
	"lms/services"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

type courseRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" form:"description"`
	Price       *int64  `json:"price" form:"price" validate:"omitempty,min=0"`
}

// CreateCourse validator middleware; accepts JSON or a multipart form with an optional image
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Struct(reqData)
		if reqData.Name == nil || strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "name is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		in := services.CreateCourseInput{
			Name:  strings.TrimSpace(*reqData.Name),
			Price: services.DefaultCoursePrice,
			Image: formFile(c, "image"),
		}
		if reqData.Description != nil {
			in.Description = *reqData.Description
		}
		if reqData.Price != nil {
			in.Price = *reqData.Price
		}

		c.Locals("validatedCourse", in)
		return c.Next()
	}
}

// UpdateCourse validator middleware; fields left out of the body keep their values
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseRequest)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		errors := validators.Struct(reqData)
		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "name must not be empty!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		in := services.UpdateCourseInput{
			Name:        reqData.Name,
			Description: reqData.Description,
			Price:       reqData.Price,
			Image:       formFile(c, "image"),
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			in.Name = &name
		}

		c.Locals("validatedCourseUpdate", in)
		return c.Next()
	}
}

// BatchEnroll expects a JSON array of user ids
func BatchEnroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ids []uint
		if err := c.BodyParser(&ids); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request body must be a list of user ids!", nil)
		}

		c.Locals("validatedStudentIDs", ids)
		return c.Next()
	}
}

// formFile returns the named upload, or nil when the request has none
func formFile(c *fiber.Ctx, field string) *multipart.FileHeader {
	if !validators.IsMultipart(c) {
		return nil
	}
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}
