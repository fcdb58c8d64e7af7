package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduportal_backend/internals/configs"
	userModel "eduportal_backend/internals/features/users/user/model"
)

// AuthMiddleware verifies the bearer token and stashes user_id / userRole in
// locals for the handlers downstream.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - token expired")
		}

		userID, role, err := extractIdentity(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid claims")
		}
		c.Locals("user_id", userID.String())
		c.Locals("userRole", role)

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		// cookie fallback for browser clients
		if ck := c.Cookies("access_token"); ck != "" {
			return ck, nil
		}
		return "", errors.New("missing Authorization header")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractIdentity(claims jwt.MapClaims) (uuid.UUID, string, error) {
	rawID, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, "", errors.New("missing id claim")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return uuid.Nil, "", errors.New("missing role claim")
	}
	return id, role, nil
}

func ensureUserActive(db *gorm.DB, id uuid.UUID) error {
	var u userModel.UserModel
	if err := db.Select("user_id", "user_is_active").
		First(&u, "user_id = ?", id).Error; err != nil {
		return err
	}
	if !u.UserIsActive {
		return errors.New("user inactive")
	}
	return nil
}
