package authController

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/services"
	"lms/utils"
	"lms/validators"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*authValidator.RegisterRequest)

	user, err := services.Register(database.Database.Db, services.RegisterInput{
		Username:  reqData.Username,
		Password:  reqData.Password,
		Email:     reqData.Email,
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
	}, config.AppConfig.SaltRound)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	utils.SendAsync(utils.WelcomeEmail(user.Email, user.FirstName, user.Username))
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
}

func SignIn(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.SignInRequest)

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	user, err := services.Authenticate(database.Database.Db, reqData.Username, reqData.Password, ip, c.Get("User-Agent"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	access, refresh, err := middleware.GenerateTokenPair(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("failed to sign tokens")
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	log.Info().Uint("user_id", user.ID).Str("ip", ip).Msg("user signed in")
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":    user,
		"access":  access,
		"refresh": refresh,
	})
}

func TokenRefresh(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRefresh").(*authValidator.RefreshRequest)

	userID, err := middleware.ParseJWT(reqData.Refresh, middleware.RefreshToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired refresh token", nil)
	}
	if _, err := services.GetUser(database.Database.Db, userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	access, _, err := middleware.GenerateTokenPair(userID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("failed to sign tokens")
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed.", fiber.Map{"access": access})
}

func LoginHistoryList(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	query := c.Locals("validatedList").(validators.ListQuery)

	history, total, err := services.LoginHistory(database.Database.Db, user, query.Page, query.Limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login History List.", fiber.Map{
		"loginTracking": history,
		"pagination": fiber.Map{
			"total": total,
			"page":  query.Page,
			"limit": query.Limit,
		},
	})
}
