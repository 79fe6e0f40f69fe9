package finders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"cilisou/internal/finder"
	"cilisou/internal/model"
)

const (
	u3c3BaseURL = "https://u3c3.com"
	// 上游要求的第二搜索参数，缺了返回空列表
	u3c3SearchToken = "eelja3lfe1a1"
)

// U3C3 U3C3种子索引站
type U3C3 struct {
	client  *http.Client
	baseURL string

	// 列表页选择器
	homeItem  cascadia.Selector
	homeTitle cascadia.Selector
	homeSize  cascadia.Selector
	homeDate  cascadia.Selector

	// 详情页选择器
	previewTitle  cascadia.Selector
	previewSize   cascadia.Selector
	previewDate   cascadia.Selector
	previewMagnet cascadia.Selector
	previewImage  cascadia.Selector
}

// NewU3C3 创建U3C3适配器，选择器在此一次性编译
func NewU3C3(client *http.Client) (*U3C3, error) {
	f := &U3C3{client: client, baseURL: u3c3BaseURL}

	var err error
	if f.homeItem, err = finder.Compile("tr.default"); err != nil {
		return nil, err
	}
	if f.homeTitle, err = finder.Compile("td:nth-child(2) > a:nth-child(1)"); err != nil {
		return nil, err
	}
	if f.homeSize, err = finder.Compile("td:nth-child(4)"); err != nil {
		return nil, err
	}
	if f.homeDate, err = finder.Compile("td:nth-child(5)"); err != nil {
		return nil, err
	}
	if f.previewTitle, err = finder.Compile("div.panel:nth-child(1) > div:nth-child(1) > h3:nth-child(1)"); err != nil {
		return nil, err
	}
	if f.previewSize, err = finder.Compile("div.row:nth-child(3) > div:nth-child(2)"); err != nil {
		return nil, err
	}
	if f.previewDate, err = finder.Compile("div.row:nth-child(1) > div:nth-child(4)"); err != nil {
		return nil, err
	}
	if f.previewMagnet, err = finder.Compile(".card-footer-item"); err != nil {
		return nil, err
	}
	if f.previewImage, err = finder.Compile("div.panel:nth-child(4) > div:nth-child(1) > img:nth-child(1)"); err != nil {
		return nil, err
	}

	return f, nil
}

// Source 实现finder.Finder
func (f *U3C3) Source() model.Source {
	return model.SourceU3C3
}

// Find 搜索列表页
func (f *U3C3) Find(ctx context.Context, keyword string) ([]model.FoundItem, error) {
	query := url.Values{}
	query.Set("search", keyword)
	query.Set("search2", u3c3SearchToken)
	searchURL := fmt.Sprintf("%s/?%s", f.baseURL, query.Encode())

	doc, err := fetchDocument(ctx, f.client, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	items := make([]model.FoundItem, 0)
	doc.FindMatcher(f.homeItem).Each(func(i int, row *goquery.Selection) {
		// 前两行是站点自己的广告行
		if i < 2 {
			return
		}

		preview := finder.FirstAttr(row, f.homeTitle, "href")
		if preview != "" {
			preview = f.baseURL + preview
		}

		items = append(items, &u3c3Item{
			title:   finder.FirstAttr(row, f.homeTitle, "title"),
			size:    model.ParseSize(finder.FirstText(row, f.homeSize)),
			date:    model.ParseDateTime(finder.FirstText(row, f.homeDate), "2006-01-02 15:04:05"),
			preview: preview,
		})
	})

	return items, nil
}

// LoadPreview 加载详情页
func (f *U3C3) LoadPreview(ctx context.Context, pageURL string) (model.FoundPreview, error) {
	doc, err := fetchDocument(ctx, f.client, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	root := doc.Selection

	// 磁力链接带统计用的查询串，截掉首个&之后的部分
	magnet := finder.FirstAttr(root, f.previewMagnet, "href")
	if end := strings.Index(magnet, "&"); end >= 0 {
		magnet = magnet[:end]
	}

	images := make([]string, 0, 1)
	if src := finder.FirstAttr(root, f.previewImage, "src"); src != "" {
		images = append(images, f.baseURL+src)
	}

	bound := boundData{
		size:   model.ParseSize(finder.FirstText(root, f.previewSize)),
		date:   model.ParseDateTime(finder.FirstText(root, f.previewDate), "2006-01-02 15:04:05"),
		magnet: magnet,
	}

	return &u3c3Preview{
		title:  finder.FirstText(root, f.previewTitle),
		bounds: []model.Bound{bound},
		images: images,
	}, nil
}

// u3c3Item U3C3的搜索结果
type u3c3Item struct {
	title   string
	size    model.Size
	date    model.Date
	preview string
}

func (i *u3c3Item) Title() string { return i.title }

func (i *u3c3Item) Size() model.Size { return i.size }

func (i *u3c3Item) Date() model.Date { return i.date }

func (i *u3c3Item) Preview() model.Previewable {
	return model.PreviewHandle{Source: model.SourceU3C3, URL: i.preview}
}

// u3c3Preview U3C3的详情预览，每条结果只有一个磁力
type u3c3Preview struct {
	title  string
	bounds []model.Bound
	images []string
}

func (p *u3c3Preview) Title() string { return p.title }

func (p *u3c3Preview) Bounds() []model.Bound { return p.bounds }

func (p *u3c3Preview) Images() []string { return p.images }
