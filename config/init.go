package config

import (
	"github.com/mikosha12/Hulu-beand-mern-b/middleware"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/services/notification"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp builds the router with the shared middleware, the websocket hub
// and the job scheduler
func InitApp(cfg *Config, log logger.Logger) (*gin.Engine, *melody.Melody, *cron.Cron) {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID")
	configCors.AddExposeHeaders("X-Session-ID")
	configCors.AllowCredentials = true
	if len(cfg.Server.AllowedOrigins) > 0 {
		configCors.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	router.Use(cors.New(configCors))
	router.SetTrustedProxies(nil)

	router.Use(
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.Metrics(),
		middleware.SessionMiddleware(),
		middleware.ErrorHandler(),
	)

	m := melody.New()
	c := cron.New()
	return router, m, c
}

// InitWebSocket serves /ws to signed-in users. Each socket remembers its
// user and role so pushes can be targeted.
func InitWebSocket(router *gin.Engine, m *melody.Melody, auth middleware.Authenticator, log logger.Logger) {
	router.GET("/ws", middleware.AuthMiddleware(auth), func(c *gin.Context) {
		session, _ := middleware.SessionFrom(c)
		keys := map[string]interface{}{
			notification.KeyUserID: session.UserID,
			notification.KeyRole:   session.Role,
		}
		if err := m.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
			log.Error("websocket upgrade for %s: %v", session.UserID, err)
		}
	})
	log.Info("WebSocket initialized successfully")
}
