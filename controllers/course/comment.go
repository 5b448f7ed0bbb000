package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

func GetContentComments(c *fiber.Ctx) error {
	comments, err := services.ListComments(database.Database.Db, c.Locals("contentID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", comments)
}

func CreateComment(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	comment, err := services.CreateComment(database.Database.Db, user, c.Locals("contentID").(uint), c.Locals("validatedComment").(string))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment created successfully!", comment)
}

func DeleteComment(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := services.DeleteComment(database.Database.Db, user, c.Locals("commentID").(uint)); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}

func ModerateComment(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	comment, err := services.ModerateComment(database.Database.Db, user, c.Locals("commentID").(uint), c.Locals("validatedModeration").(bool))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment moderated successfully", comment)
}
