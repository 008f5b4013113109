package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// CORS allows origins matching any of the glob patterns, e.g. "https://*.yozi.app"
func CORS(patterns []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return originAllowed(patterns, origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func originAllowed(patterns []string, origin string) bool {
	for _, p := range patterns {
		if glob.Glob(p, origin) {
			return true
		}
	}
	return false
}
