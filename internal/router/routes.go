package router

import (
	"github.com/festivio/committee-dashboard/go-api-server/internal/analytics"
	"github.com/festivio/committee-dashboard/go-api-server/internal/config"
	"github.com/festivio/committee-dashboard/go-api-server/internal/member"
	"github.com/festivio/committee-dashboard/go-api-server/internal/meta"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/database"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/metrics"
	"github.com/festivio/committee-dashboard/go-api-server/internal/taskcategory"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check, metrics)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// repository
	memberRepository := member.NewMemberRepository()

	// service
	memberService := member.NewMemberService(db.DB, memberRepository)
	analyticsService := analytics.NewAnalyticsService(db.DB, memberRepository, analytics.NewEngine(analytics.DefaultTierScheme))

	// handler
	memberHandler := member.NewMemberHandler(memberService)
	analyticsHandler := analytics.NewAnalyticsHandler(analyticsService)
	taskCategoryHandler := taskcategory.NewTaskCategoryHandler()

	// API v1 routes
	memberV1 := router.Group("/api/v1/members")
	{
		memberV1.GET("", memberHandler.List)
		memberV1.POST("", memberHandler.Create)
		memberV1.GET("/:id", memberHandler.Get)
		memberV1.PUT("/:id", memberHandler.Update)
		memberV1.DELETE("/:id", memberHandler.Delete)
	}

	analyticsV1 := router.Group("/api/v1/analytics")
	{
		analyticsV1.GET("/overview", analyticsHandler.Overview)
		analyticsV1.GET("/tasks", analyticsHandler.Tasks)
		analyticsV1.GET("/registrations", analyticsHandler.Registrations)
	}

	router.GET("/api/v1/task-categories", taskCategoryHandler.List)
}
