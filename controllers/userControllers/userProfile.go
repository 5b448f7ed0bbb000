package userController

import (
	"lms/database"
	"lms/middleware"
	"lms/services"
	"lms/storage"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	profile, err := services.ShowProfile(c.UserContext(), database.Database.Db, storage.Files, c.Locals("targetUserID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)
}

func UpdateProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	updated, err := services.EditProfile(c.UserContext(), database.Database.Db, storage.Files, user, c.Locals("validatedProfile").(services.ProfileInput))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", updated)
}

func GetActivity(c *fiber.Ctx) error {
	activity, err := services.UserActivityDashboard(database.Database.Db, c.Locals("targetUserID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User activity fetched successfully!", activity)
}
