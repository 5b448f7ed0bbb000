package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// MarkContentComplete is idempotent; a repeat call reports the existing completion
func MarkContentComplete(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	completion, created, err := services.MarkComplete(database.Database.Db, user, c.Locals("courseID").(uint), c.Locals("contentID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if !created {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content already completed!", completion)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content marked as complete!", completion)
}

func GetCompletions(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	items, err := services.ListCompletions(database.Database.Db, user, c.Locals("courseID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completions fetched successfully!", items)
}

func DeleteCompletion(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := services.DeleteCompletion(database.Database.Db, user, c.Locals("courseID").(uint), c.Locals("contentID").(uint)); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion removed!", nil)
}

func GetCourseAnalytics(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := services.CourseAnalyticsFor(database.Database.Db, user, c.Locals("courseID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course analytics fetched successfully!", stats)
}
