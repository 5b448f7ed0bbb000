package courseValidator

import (
	"strings"
	"time"

	"lms/middleware"
	"lms/services"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateContent validator middleware; release_time is RFC 3339 when given
func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name" form:"name" validate:"required,max=200"`
			Description string `json:"description" form:"description"`
			VideoURL    string `json:"video_url" form:"video_url" validate:"omitempty,url,max=200"`
			OrderIndex  int    `json:"order_index" form:"order_index" validate:"min=0"`
			ReleaseTime string `json:"release_time" form:"release_time"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Name = strings.TrimSpace(reqData.Name)

		errors := validators.Struct(reqData)

		in := services.CreateContentInput{
			Name:        reqData.Name,
			Description: reqData.Description,
			VideoURL:    reqData.VideoURL,
			OrderIndex:  reqData.OrderIndex,
			Attachment:  formFile(c, "file_attachment"),
		}
		if s := strings.TrimSpace(reqData.ReleaseTime); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				errors["release_time"] = "release_time must be an RFC 3339 timestamp!"
			} else {
				t = t.UTC()
				in.ReleaseTime = &t
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", in)
		return c.Next()
	}
}

// CreateComment validator middleware; empty text is left to the service
func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Comment string `json:"comment" form:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedComment", reqData.Comment)
		return c.Next()
	}
}

// ModerateComment validator middleware; is_moderated defaults to true
func ModerateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsModerated *bool `json:"is_moderated" form:"is_moderated"`
		})

		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		moderated := true
		if reqData.IsModerated != nil {
			moderated = *reqData.IsModerated
		}

		c.Locals("validatedModeration", moderated)
		return c.Next()
	}
}
