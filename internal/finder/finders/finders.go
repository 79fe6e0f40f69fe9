// Package finders 内置的各站点适配器
// 每个适配器持有共享的HTTP客户端和构造期编译好的选择器，调用之间无状态
package finders

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"cilisou/internal/finder"
	"cilisou/internal/model"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// All 构造全部内置适配器并按源标识建注册表
// 任何一个适配器构造失败（选择器写错）整体失败
func All(client *http.Client) (map[model.Source]finder.Finder, error) {
	registry := make(map[model.Source]finder.Finder)

	u3c3, err := NewU3C3(client)
	if err != nil {
		return nil, err
	}
	registry[u3c3.Source()] = u3c3

	javdb, err := NewJavdb(client)
	if err != nil {
		return nil, err
	}
	registry[javdb.Source()] = javdb

	madou, err := NewMadou(client)
	if err != nil {
		return nil, err
	}
	registry[madou.Source()] = madou

	return registry, nil
}

// fetchDocument 发请求并把响应体解析成goquery文档
// 传输层失败包装为NetworkError返回
func fetchDocument(ctx context.Context, client *http.Client, method, reqURL string, form io.Reader) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, method, reqURL, form)
	if err != nil {
		return nil, &finder.NetworkError{Err: err}
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &finder.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &finder.NetworkError{Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, &finder.NetworkError{Err: err}
	}

	return doc, nil
}

// boundData 通用的磁力变体数据
type boundData struct {
	size   model.Size
	date   model.Date
	magnet string
}

func (b boundData) Size() model.Size { return b.size }

func (b boundData) Date() model.Date { return b.date }

func (b boundData) Magnet() string { return b.magnet }
