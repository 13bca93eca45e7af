package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cafe-menu-service/internal/handler/api"
	"cafe-menu-service/internal/handler/middleware"
	"cafe-menu-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, menuHandler *api.MenuHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, menuHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, menuHandler *api.MenuHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		editor := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleEditor)}
		manager := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleManager)}

		menus := apiGroup.Group("/menus")
		menus.Use(authMiddleware.RequireAuth())
		{
			addRoutes(menus, []route{
				{Method: http.MethodGet, Path: "", Handler: menuHandler.List},
				{Method: http.MethodGet, Path: "/active", Handler: menuHandler.GetActive},
				{Method: http.MethodGet, Path: "/:id", Handler: menuHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: menuHandler.Create, Mw: editor},
				{Method: http.MethodPut, Path: "/:id", Handler: menuHandler.Sync, Mw: editor},
				{Method: http.MethodPost, Path: "/:id/clone", Handler: menuHandler.Clone, Mw: editor},
				{Method: http.MethodPost, Path: "/:id/publish", Handler: menuHandler.Publish, Mw: manager},
				{Method: http.MethodPost, Path: "/:id/activate", Handler: menuHandler.Activate, Mw: manager},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: menuHandler.Deactivate, Mw: manager},
				{Method: http.MethodDelete, Path: "/:id", Handler: menuHandler.Delete, Mw: manager},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
