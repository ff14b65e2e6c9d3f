package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"storefront/config"
	"storefront/middlewares"
)

// NewRouter 组装中间件与全部路由
func NewRouter(cfg *config.Config, h *Handler, limiter *middlewares.RateLimiter, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log))

	// 应用Prometheus中间件
	r.Use(middlewares.PrometheusMiddleware())

	// 暴露Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查端点
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if limiter != nil {
		api.Use(limiter.Middleware())
	}
	api.Use(middlewares.ProfileMiddleware(middlewares.ProfileConfig{
		Secret:     cfg.JWTSecret,
		CookieName: cfg.ProfileCookie,
		TTL:        cfg.ProfileTTL,
		Secure:     cfg.CookieSecure,
	}, log))
	h.RegisterRoutes(api)

	// 死信队列处理端点
	r.POST("/dead-letter", h.HandleDeadLetter)

	return r
}
