package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"
	"lms/storage"

	"github.com/gofiber/fiber/v2"
)

func GetCourseContents(c *fiber.Ctx) error {
	contents, err := services.ListContents(database.Database.Db, c.Locals("courseID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course contents fetched successfully!", contents)
}

func GetContentDetails(c *fiber.Ctx) error {
	content, err := services.GetContent(database.Database.Db, c.Locals("courseID").(uint), c.Locals("contentID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully!", content)
}

func CreateContent(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	content, err := services.CreateContent(c.UserContext(), database.Database.Db, storage.Files, user,
		c.Locals("courseID").(uint), c.Locals("validatedContent").(services.CreateContentInput))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course content created successfully!", content)
}

func DeleteContent(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := services.DeleteContent(database.Database.Db, user, c.Locals("courseID").(uint), c.Locals("contentID").(uint)); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content deleted successfully!", nil)
}

// GetReleasedContents lists content already released to the requester
func GetReleasedContents(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	contents, err := services.ListReleasedContents(database.Database.Db, user, c.Locals("courseID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Released contents fetched successfully!", contents)
}
