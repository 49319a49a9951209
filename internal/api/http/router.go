package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/lanestel/admin-gateway/internal/api/http/handler"
	"github.com/lanestel/admin-gateway/internal/api/http/middleware"
	"github.com/lanestel/admin-gateway/internal/auth"
	"github.com/lanestel/admin-gateway/internal/provisioning"
)

const loginPath = "/"

type Services struct {
	Auth         *auth.Service
	Provisioning *provisioning.Client
}

// SetupRoute wires the route table. Everything except the login page,
// the auth endpoints, static assets, and the health probe sits behind
// the session gate; the wrong-verb answers on the device endpoint stay
// outside it so they do not depend on login state.
func SetupRoute(engine *gin.Engine, srvs *Services, config Config, authConfig auth.Config) {
	engine.Use(middleware.RequestLogger())

	gate := middleware.SessionAuth(authConfig.JWT.Secret, loginPath)

	healthHandler := handler.NewHealthHandler()
	engine.GET("/health", healthHandler.Check)

	cookieLifetime := int(authConfig.JWT.Lifetime.Seconds())
	authHandler := handler.NewAuthHandler(srvs.Auth, cookieLifetime, config.CookieSecure)
	engine.POST("/api/auth/login", authHandler.Login)
	engine.POST("/api/auth/logout", authHandler.Logout)

	deviceHandler := handler.NewDeviceHandler(srvs.Provisioning)
	engine.POST("/api/auth/create-device", gate, deviceHandler.CreateDevice)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		engine.Handle(method, "/api/auth/create-device", deviceHandler.MethodNotAllowed)
	}

	if config.StaticDir != "" {
		engine.StaticFile(loginPath, filepath.Join(config.StaticDir, "index.html"))
		engine.Static("/static", filepath.Join(config.StaticDir, "static"))
		engine.GET("/dashboard", gate, func(c *gin.Context) {
			c.File(filepath.Join(config.StaticDir, "dashboard.html"))
		})
	}
}
