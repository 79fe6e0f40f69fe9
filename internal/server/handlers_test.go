package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cilisou/internal/config"
	"cilisou/internal/model"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8086, Enabled: true},
	}
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("创建服务器失败: %v", err)
	}
	return srv
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	router := srv.setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d", w.Code)
	}

	var resp model.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || resp.SourceCount != 3 {
		t.Errorf("健康响应 = %+v, 期望3个源", resp)
	}
	if resp.QbitEnabled {
		t.Error("qbit未配置时不应标记启用")
	}
}

func TestHandleSearchEmptyKeyword(t *testing.T) {
	srv := newTestServer(t)
	router := srv.setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("空关键词状态码 = %d, 期望 400", w.Code)
	}
}

func TestHandlePreviewUnknownSource(t *testing.T) {
	srv := newTestServer(t)
	router := srv.setupRouter()

	body := `{"handle":{"source":"no-such-source","url":"https://example.com/x"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("未知源状态码 = %d, 期望 500", w.Code)
	}

	var resp model.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Message, "未找到") {
		t.Errorf("错误信息 = %q, 应当是一句完整的提示", resp.Message)
	}
}

func TestHandleDownloadWithoutQbit(t *testing.T) {
	srv := newTestServer(t)
	router := srv.setupRouter()

	body := `{"magnet":"magnet:?xt=urn:btih:abc"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/download", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("下载器未启用状态码 = %d, 期望 503", w.Code)
	}
}
