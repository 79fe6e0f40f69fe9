package model

// SearchRequest 搜索请求
type SearchRequest struct {
	Keyword string `json:"keyword" binding:"required"`
}

// SearchResponse 搜索响应
type SearchResponse struct {
	Total      int          `json:"total"`
	Results    []ItemResult `json:"results"`
	SearchTime float64      `json:"search_time"`
}

// ItemResult 搜索响应里的一条结果
type ItemResult struct {
	Title  string        `json:"title"`
	Size   string        `json:"size"`
	Date   string        `json:"date"`
	Handle PreviewHandle `json:"handle"`
}

// NewItemResult 由FoundItem构造响应条目
func NewItemResult(item FoundItem) ItemResult {
	source, url := item.Preview().PreviewURL()
	return ItemResult{
		Title: item.Title(),
		Size:  item.Size().String(),
		Date:  item.Date().String(),
		Handle: PreviewHandle{
			Source: source,
			URL:    url,
		},
	}
}

// PreviewRequest 预览请求，handle即搜索响应里原样返回的句柄
type PreviewRequest struct {
	Handle PreviewHandle `json:"handle" binding:"required"`
}

// PreviewResponse 预览响应
type PreviewResponse struct {
	Title  string        `json:"title"`
	Bounds []BoundResult `json:"bounds"`
	Images []string      `json:"images"`
}

// BoundResult 预览响应里的一个磁力变体
type BoundResult struct {
	Size   string `json:"size"`
	Date   string `json:"date"`
	Magnet string `json:"magnet"`
}

// NewPreviewResponse 由FoundPreview构造预览响应
func NewPreviewResponse(preview FoundPreview) PreviewResponse {
	bounds := make([]BoundResult, 0, len(preview.Bounds()))
	for _, b := range preview.Bounds() {
		bounds = append(bounds, BoundResult{
			Size:   b.Size().String(),
			Date:   b.Date().String(),
			Magnet: b.Magnet(),
		})
	}
	return PreviewResponse{
		Title:  preview.Title(),
		Bounds: bounds,
		Images: preview.Images(),
	}
}

// DownloadRequest 下载请求，把磁力链接提交给下载器
type DownloadRequest struct {
	Magnet string `json:"magnet" binding:"required"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status      string   `json:"status"`
	Sources     []string `json:"sources"`
	SourceCount int      `json:"source_count"`
	QbitEnabled bool     `json:"qbit_enabled"`
}
