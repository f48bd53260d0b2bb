// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func parseBearer(ctx *fiber.Ctx) (jwt.MapClaims, *BaseResponse[any]) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		res := ErrorResponse(fiber.StatusUnauthorized, "Missing token")
		return nil, &res
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		res := ErrorResponse(fiber.StatusUnauthorized, "Invalid token")
		return nil, &res
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		res := ErrorResponse(fiber.StatusUnauthorized, "Invalid claims")
		return nil, &res
	}
	return claims, nil
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, errRes := parseBearer(ctx)
	if errRes != nil {
		return ctx.Status(errRes.Code).JSON(errRes)
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("role", claims["role"])
	return ctx.Next()
}

// AdminMiddleware requires a valid token whose role claim is "admin".
func AdminMiddleware(ctx *fiber.Ctx) error {
	claims, errRes := parseBearer(ctx)
	if errRes != nil {
		return ctx.Status(errRes.Code).JSON(errRes)
	}

	role, _ := claims["role"].(string)
	if role != RoleAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "Access denied: Admins only"))
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("role", role)
	return ctx.Next()
}

// IssueToken signs an HS256 token with the user_id and role claims.
func IssueToken(userID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}
