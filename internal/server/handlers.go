package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cilisou/internal/model"
)

// handleHealth 健康检查
func (s *Server) handleHealth(c *gin.Context) {
	sources := s.magnet.Sources()

	resp := model.HealthResponse{
		Status:      "ok",
		Sources:     sources,
		SourceCount: len(sources),
		QbitEnabled: s.config.Qbit.Enabled,
	}

	c.JSON(http.StatusOK, resp)
}

// handleSearch 搜索处理
func (s *Server) handleSearch(c *gin.Context) {
	var req model.SearchRequest

	if c.Request.Method == http.MethodGet {
		req.Keyword = c.Query("kw")
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{
				Code:    400,
				Message: "无效的请求参数: " + err.Error(),
			})
			return
		}
	}

	if req.Keyword == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    400,
			Message: "搜索关键词不能为空",
		})
		return
	}

	startTime := time.Now()
	items, err := s.magnet.Find(c.Request.Context(), req.Keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    500,
			Message: "搜索失败: " + err.Error(),
		})
		return
	}

	if limit := s.config.Search.ResultLimit; limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	results := make([]model.ItemResult, 0, len(items))
	for _, item := range items {
		results = append(results, model.NewItemResult(item))
	}

	c.JSON(http.StatusOK, model.SearchResponse{
		Total:      len(results),
		Results:    results,
		SearchTime: time.Since(startTime).Seconds(),
	})
}

// handlePreview 预览处理，句柄原样来自搜索响应
func (s *Server) handlePreview(c *gin.Context) {
	var req model.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    400,
			Message: "无效的请求参数: " + err.Error(),
		})
		return
	}

	preview, err := s.magnet.Preview(c.Request.Context(), req.Handle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    500,
			Message: "加载预览失败: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.NewPreviewResponse(preview))
}

// handleDownload 把磁力链接提交给qBittorrent
func (s *Server) handleDownload(c *gin.Context) {
	if s.qbit == nil || !s.qbit.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, model.ErrorResponse{
			Code:    503,
			Message: "下载器未启用或不可用",
		})
		return
	}

	var req model.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    400,
			Message: "无效的请求参数: " + err.Error(),
		})
		return
	}

	if err := s.qbit.AddMagnet(c.Request.Context(), req.Magnet); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    500,
			Message: "提交下载失败: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "已提交下载",
	})
}

// handleGetConfig 获取配置
func (s *Server) handleGetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server": gin.H{
			"port":    s.config.Server.Port,
			"enabled": s.config.Server.Enabled,
		},
		"search": gin.H{
			"result_limit": s.config.Search.ResultLimit,
		},
		"qbit": gin.H{
			"enabled": s.config.Qbit.Enabled,
			"url":     s.config.Qbit.URL,
		},
	})
}
