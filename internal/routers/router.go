package routers

import (
	"time"

	"github.com/chroniclenote/chronicle-note-service/internal/app"
	"github.com/chroniclenote/chronicle-note-service/internal/middleware"
	"github.com/chroniclenote/chronicle-note-service/internal/routers/api_router"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = newMethodLimiters()

// NewRouter 创建对外 HTTP 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	// 创建 Handlers（注入 App Container）
	userHandler := api_router.NewUserHandler(appContainer)
	noteHandler := api_router.NewNoteHandler(appContainer)
	shareHandler := api_router.NewShareHandler(appContainer)
	exportHandler := api_router.NewExportHandler(appContainer)
	versionHandler := api_router.NewVersionHandler(appContainer)
	healthHandler := api_router.NewHealthHandler(appContainer)

	common := []gin.HandlerFunc{
		middleware.AppInfo(),
		middleware.TraceMiddleware(cfg.Tracer.Header),
		middleware.RateLimiter(methodLimiters),
		middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second),
		middleware.Cors(),
		middleware.LangWithTranslator(uni),
		middleware.AccessLog(),
		middleware.RecoveryWithLogger(appContainer.Logger()),
	}

	// 公开的笔记解析入口：凭令牌读取，无需认证
	s := r.Group("/s", common...)
	{
		s.GET("/:token", shareHandler.Resolve)
	}

	api := r.Group("/api", common...)
	{
		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)

		// 服务端版本号与健康检查接口（无需认证）
		api.GET("/version", versionHandler.ServerVersion)
		api.GET("/health", healthHandler.Check)

		auth := api.Group("", middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey))
		{
			auth.GET("/user/info", userHandler.UserInfo)

			auth.POST("/note", noteHandler.Create)
			auth.PUT("/note", noteHandler.Update)
			auth.DELETE("/note", noteHandler.Delete)
			auth.GET("/note", noteHandler.Get)
			auth.GET("/notes", noteHandler.List)
			auth.POST("/note/import", noteHandler.Import)
			auth.GET("/note/templates", noteHandler.Templates)

			auth.POST("/share", shareHandler.Create)
			auth.DELETE("/share", shareHandler.Revoke)
			auth.GET("/shares", shareHandler.List)

			auth.GET("/export/markdown", exportHandler.Markdown)
			auth.GET("/export/csv", exportHandler.CSV)
		}
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
