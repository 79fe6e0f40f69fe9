// Package magnet 聚合多个搜索源的核心
// 一次搜索并发扇出到所有注册的源，单个源失败只丢弃不中断整次调用，
// 预览请求按句柄里的源标识路由回产生它的那个源
package magnet

import (
	"context"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"cilisou/internal/finder"
	"cilisou/internal/finder/finders"
	"cilisou/internal/model"
)

const requestTimeout = 10 * time.Second

// Magnet 聚合器，持有共享HTTP客户端和只读的源注册表
type Magnet struct {
	client  *http.Client
	finders map[model.Source]finder.Finder
}

// New 创建聚合器
// 注册表构造一次之后只读，之后的并发读不需要加锁
func New() (*Magnet, error) {
	client := defaultHTTPClient()

	registry, err := finders.All(client)
	if err != nil {
		return nil, err
	}

	return &Magnet{
		client:  client,
		finders: registry,
	}, nil
}

// defaultHTTPClient 所有源共用的客户端，net/http自带透明gzip解压
func defaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Find 并发搜索所有源，合并后按日期倒序、体积倒序排序
// 某个源报错只记一条日志并丢弃该源，其余源的结果照常返回
func (m *Magnet) Find(ctx context.Context, keyword string) ([]model.FoundItem, error) {
	allItems := make([]model.FoundItem, 0)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, f := range m.finders {
		wg.Add(1)

		go func(f finder.Finder) {
			defer wg.Done()

			items, err := f.Find(ctx, keyword)
			if err != nil {
				log.Printf("[聚合] 源 %s 搜索失败: %v", f.Source(), err)
				return
			}

			mu.Lock()
			allItems = append(allItems, items...)
			mu.Unlock()
		}(f)
	}

	wg.Wait()

	sortItems(allItems)
	return allItems, nil
}

// Preview 取出句柄里的源标识，路由到对应的源加载预览
func (m *Magnet) Preview(ctx context.Context, p model.Previewable) (model.FoundPreview, error) {
	source, pageURL := p.PreviewURL()

	f, ok := m.finders[source]
	if !ok {
		return nil, finder.ErrSourceNotFound
	}

	return f.LoadPreview(ctx, pageURL)
}

// Sources 已注册的源名称，给健康检查用
func (m *Magnet) Sources() []string {
	names := make([]string, 0, len(m.finders))
	for source := range m.finders {
		names = append(names, source.String())
	}
	sort.Strings(names)
	return names
}

// sortItems 唯一的排序策略：日期新的在前，日期相同体积大的在前
func sortItems(items []model.FoundItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date().Time().Equal(items[j].Date().Time()) {
			return items[j].Date().Less(items[i].Date())
		}
		return items[j].Size().Less(items[i].Size())
	})
}
