package routers

import (
	authControllers "lms/controllers/auth"
	"lms/validators"
	authValidators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func authRoutes() []Route {
	return []Route{
		{Method: fiber.MethodPost, Path: "/auth/register", Handlers: []fiber.Handler{authValidators.Register(), authControllers.Register}},
		{Method: fiber.MethodPost, Path: "/auth/sign-in", Handlers: []fiber.Handler{authValidators.SignIn(), authControllers.SignIn}},
		{Method: fiber.MethodPost, Path: "/auth/token-refresh", Handlers: []fiber.Handler{authValidators.TokenRefresh(), authControllers.TokenRefresh}},
		{Method: fiber.MethodGet, Path: "/auth/login/history", Auth: true, Handlers: []fiber.Handler{validators.Pagination(), authControllers.LoginHistoryList}},
	}
}
