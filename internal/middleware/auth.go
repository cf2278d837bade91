// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"context"
	"strconv"
	"strings"

	"moodwave/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

var (
	cfg *config.Config
	rdb *redis.Client
)

// InitMiddleware initializes authentication middleware with the given config
// and an optional Redis client used for the token revocation list.
func InitMiddleware(c *config.Config, r *redis.Client) {
	cfg = c
	rdb = r
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization header required",
		})
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid authorization header format",
		})
	}

	tokenString := parts[1]

	// Parse and validate token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	// Extract claims
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token claims",
		})
	}

	// Extract user ID from "sub" claim (subject claim per RFC 7519)
	subClaim, ok := claims["sub"]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token structure - missing subject",
		})
	}

	// Type assertion from interface to string
	subStr, ok := subClaim.(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token subject type",
		})
	}

	// Parse user ID from string to uint
	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID in token",
		})
	}

	// Reject tokens that were revoked at logout. If Redis is unavailable the
	// token is accepted on signature alone.
	if jti, ok := claims["jti"].(string); ok && jti != "" && rdb != nil {
		revoked, err := rdb.Exists(context.Background(), "jwt:blacklist:"+jti).Result()
		if err == nil && revoked > 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token has been revoked",
			})
		}
	}

	// Store user ID in context
	c.Locals("userID", uint(userIDVal))
	if jti, ok := claims["jti"].(string); ok {
		c.Locals("tokenJTI", jti)
	}

	return c.Next()
}
