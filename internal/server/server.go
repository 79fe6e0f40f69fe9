package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cilisou/internal/config"
	"cilisou/internal/magnet"
	"cilisou/internal/qbit"
)

// Server HTTP服务器
type Server struct {
	config     *config.Config
	httpServer *http.Server
	magnet     *magnet.Magnet
	qbit       *qbit.Client
}

// New 创建新服务器
// 聚合器构造失败（选择器写错、客户端配置非法）直接失败
func New(cfg *config.Config) (*Server, error) {
	m, err := magnet.New()
	if err != nil {
		return nil, fmt.Errorf("创建聚合器失败: %w", err)
	}

	var qb *qbit.Client
	if cfg.Qbit.Enabled {
		qb = qbit.NewClient(&cfg.Qbit)
	}

	return &Server{
		config: cfg,
		magnet: m,
		qbit:   qb,
	}, nil
}

// Start 启动服务器
func (s *Server) Start() error {
	if !s.config.Server.Enabled {
		return fmt.Errorf("服务器未启用")
	}

	gin.SetMode(gin.ReleaseMode)
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("HTTP服务器启动在端口 %d", s.config.Server.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP服务器错误: %v", err)
		}
	}()

	return nil
}

// Shutdown 关闭服务器
func (s *Server) Shutdown() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// setupRouter 设置路由
func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(loggerMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.POST("/search", s.handleSearch)
		api.GET("/search", s.handleSearch)

		api.POST("/preview", s.handlePreview)

		api.POST("/download", s.handleDownload)

		api.GET("/config", s.handleGetConfig)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// 日志中间件
func loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[HTTP] %s %s %d %v", c.Request.Method, path, statusCode, latency)
	}
}
