package middleware

import (
	"fmt"
	"speakup/config"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT signs a token for the claimed identity. No credential is
// verified here; the token only binds later requests to this email.
func GenerateJWT(email, name string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"name":  name,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(1 * time.Hour).Unix(), // expiry 1h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	// Get the token from the Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
	}

	// Extract the token part
	tokenString := authHeader[len("Bearer "):]

	// Parse and validate the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Check if the token method is valid
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		jwtSecret := []byte(config.AppConfig.JWTKey)
		return jwtSecret, nil
	})

	// If there's an error parsing the token
	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
	}

	// Extract the identity from the token claims
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["email"] == nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized access")
	}

	// Set the decoded email in the request context
	c.Locals("email", email)

	// If valid, continue to the next handler
	return c.Next()
}

// ErrorResponse writes the structured error body used for guard failures.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":   true,
		"message": "Validation failed!",
		"errors":  errors,
	})
}
