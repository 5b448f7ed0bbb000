package routers

import (
	userControllers "lms/controllers/userControllers"
	"lms/validators"
	userValidators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

func userRoutes() []Route {
	userID := validators.ParamID("user_id", "targetUserID")

	return []Route{
		{Method: fiber.MethodGet, Path: "/user/:user_id/profile", Auth: true, Handlers: []fiber.Handler{userID, userControllers.GetProfile}},
		{Method: fiber.MethodPut, Path: "/user/profile", Auth: true, Handlers: []fiber.Handler{userValidators.EditProfile(), userControllers.UpdateProfile}},
		{Method: fiber.MethodGet, Path: "/user/:user_id/activity", Auth: true, Handlers: []fiber.Handler{userID, userControllers.GetActivity}},
		{Method: fiber.MethodPost, Path: "/user/bookmark", Auth: true, Handlers: []fiber.Handler{userValidators.AddBookmark(), userControllers.AddBookmark}},
		{Method: fiber.MethodGet, Path: "/user/bookmarks", Auth: true, Handlers: []fiber.Handler{userControllers.GetBookmarks}},
		{Method: fiber.MethodDelete, Path: "/user/bookmark/:bookmark_id", Auth: true, Handlers: []fiber.Handler{validators.ParamID("bookmark_id", "bookmarkID"), userControllers.DeleteBookmark}},
	}
}
