package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"eduportal_backend/internals/configs"
)

// CorsMiddleware builds the CORS middleware. Extra origins come from
// CORS_ORIGINS (comma separated).
func CorsMiddleware() fiber.Handler {
	origins := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5500",
	}
	if extra := configs.GetEnv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
