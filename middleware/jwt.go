package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lms/config"
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	AccessToken  = "access"
	RefreshToken = "refresh"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateJWT signs a token of the given type for the user
func GenerateJWT(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"type":   tokenType,
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// GenerateTokenPair issues an access and a refresh token using the configured lifetimes
func GenerateTokenPair(userID uint) (string, string, error) {
	access, err := GenerateJWT(userID, AccessToken, time.Duration(config.AppConfig.JWTAccessTTLMinutes)*time.Minute)
	if err != nil {
		return "", "", err
	}
	refresh, err := GenerateJWT(userID, RefreshToken, time.Duration(config.AppConfig.JWTRefreshTTLHours)*time.Hour)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseJWT validates tokenString and returns the user id it was issued for
func ParseJWT(tokenString, tokenType string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != tokenType {
		return 0, ErrInvalidToken
	}

	// JWT numbers decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}

// JWTMiddleware resolves the bearer token to a user and stores it in the request context
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	userID, err := ParseJWT(strings.TrimSpace(authHeader[len("Bearer "):]), AccessToken)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Uint("user_id", userID).Msg("failed to load token user")
		}
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	c.Locals("userId", user.ID)
	c.Locals("user", &user)
	return c.Next()
}

// CurrentUser returns the user stored by JWTMiddleware
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals("user").(*models.User)
	return user, ok && user != nil
}
