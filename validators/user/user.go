package userValidator

import (
	"strings"

	"lms/middleware"
	"lms/services"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// EditProfile validator middleware; accepts JSON or a multipart form with profile_picture
func EditProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName   *string `json:"first_name" form:"first_name" validate:"omitempty,max=150"`
			LastName    *string `json:"last_name" form:"last_name" validate:"omitempty,max=150"`
			Email       *string `json:"email" form:"email" validate:"omitempty,email"`
			Phone       *string `json:"phone" form:"phone" validate:"omitempty,max=20"`
			Description *string `json:"description" form:"description"`
		})

		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}
		if reqData.Email != nil {
			email := strings.TrimSpace(*reqData.Email)
			reqData.Email = &email
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		in := services.ProfileInput{
			FirstName:   reqData.FirstName,
			LastName:    reqData.LastName,
			Email:       reqData.Email,
			Phone:       reqData.Phone,
			Description: reqData.Description,
		}
		if validators.IsMultipart(c) {
			if file, err := c.FormFile("profile_picture"); err == nil {
				in.ProfilePicture = file
			}
		}

		c.Locals("validatedProfile", in)
		return c.Next()
	}
}

// AddBookmark validator middleware; a missing course_content_id is reported by the service
func AddBookmark() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseContentID *uint `json:"course_content_id" form:"course_content_id"`
		})

		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		c.Locals("validatedBookmark", reqData.CourseContentID)
		return c.Next()
	}
}
