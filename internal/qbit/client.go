// Package qbit qBittorrent WebUI API客户端
// 下载器是外部服务，核心搜索逻辑不依赖它，仅由HTTP层在启用时调用
package qbit

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"cilisou/internal/config"
)

// Client qBittorrent客户端，登录后靠cookie维持会话
type Client struct {
	config     *config.QbitConfig
	httpClient *http.Client
	available  bool
}

// NewClient 创建客户端并尝试登录
// 登录失败只记日志不报错，后续调用方可通过IsAvailable判断
func NewClient(cfg *config.QbitConfig) *Client {
	jar, _ := cookiejar.New(nil)

	client := &Client{
		config: cfg,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}

	if err := client.login(); err != nil {
		log.Printf("[qBit] 登录失败: %v", err)
		client.available = false
	} else {
		log.Println("[qBit] 登录成功")
		client.available = true
	}

	return client
}

// IsAvailable 返回下载器是否可用
func (c *Client) IsAvailable() bool {
	return c.available
}

// login 表单登录，会话cookie由jar保管
func (c *Client) login() error {
	form := url.Values{}
	form.Set("username", c.config.Username)
	form.Set("password", c.config.Password)

	resp, err := c.postForm(context.Background(), "/api/v2/auth/login", form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64))
	if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(body)) != "Ok." {
		return fmt.Errorf("认证被拒绝，状态码: %d", resp.StatusCode)
	}

	return nil
}

// AddMagnet 提交磁力链接开始下载
func (c *Client) AddMagnet(ctx context.Context, magnet string) error {
	form := url.Values{}
	form.Set("urls", magnet)

	return c.simpleOp(ctx, "/api/v2/torrents/add", form)
}

// Pause 按哈希暂停任务
func (c *Client) Pause(ctx context.Context, hash string) error {
	form := url.Values{}
	form.Set("hashes", hash)

	return c.simpleOp(ctx, "/api/v2/torrents/pause", form)
}

// Resume 按哈希恢复任务
func (c *Client) Resume(ctx context.Context, hash string) error {
	form := url.Values{}
	form.Set("hashes", hash)

	return c.simpleOp(ctx, "/api/v2/torrents/resume", form)
}

// Delete 按哈希删除任务，deleteFiles为真时连文件一起删
func (c *Client) Delete(ctx context.Context, hash string, deleteFiles bool) error {
	form := url.Values{}
	form.Set("hashes", hash)
	form.Set("deleteFiles", fmt.Sprintf("%t", deleteFiles))

	return c.simpleOp(ctx, "/api/v2/torrents/delete", form)
}

// simpleOp 只关心成败的操作接口
func (c *Client) simpleOp(ctx context.Context, path string, form url.Values) error {
	resp, err := c.postForm(ctx, path, form)
	if err != nil {
		return fmt.Errorf("下载器请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("下载器返回状态码: %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	reqURL := strings.TrimRight(c.config.URL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", c.config.URL)

	return c.httpClient.Do(req)
}
