package finders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"cilisou/internal/finder"
	"cilisou/internal/model"
)

const javdbBaseURL = "https://javdb.com"

// Javdb Javdb影片索引站，同一条结果可能有多个磁力变体
type Javdb struct {
	client  *http.Client
	baseURL string

	homeItem cascadia.Selector
	homeLink cascadia.Selector
	homeID   cascadia.Selector
	homeDate cascadia.Selector

	previewTitle  cascadia.Selector
	previewSample cascadia.Selector
	previewBound  cascadia.Selector
	previewDate   cascadia.Selector
	previewSize   cascadia.Selector
	previewLink   cascadia.Selector
}

// NewJavdb 创建Javdb适配器
func NewJavdb(client *http.Client) (*Javdb, error) {
	f := &Javdb{client: client, baseURL: javdbBaseURL}

	var err error
	if f.homeItem, err = finder.Compile("body > section > div > div.movie-list.h.cols-4.vcols-8 > div"); err != nil {
		return nil, err
	}
	if f.homeLink, err = finder.Compile("a"); err != nil {
		return nil, err
	}
	if f.homeID, err = finder.Compile("a > div.video-title > strong"); err != nil {
		return nil, err
	}
	if f.homeDate, err = finder.Compile("a > div.meta"); err != nil {
		return nil, err
	}
	if f.previewTitle, err = finder.Compile("body > section > div > div.video-detail > h2 > strong.current-title"); err != nil {
		return nil, err
	}
	if f.previewSample, err = finder.Compile("body > section > div > div.video-detail > div:nth-child(3) > div > article > div > div > a > img"); err != nil {
		return nil, err
	}
	if f.previewBound, err = finder.Compile("#magnets-content > div"); err != nil {
		return nil, err
	}
	if f.previewDate, err = finder.Compile("div.date.column > span"); err != nil {
		return nil, err
	}
	if f.previewSize, err = finder.Compile("div.magnet-name.column.is-four-fifths > a > span.meta"); err != nil {
		return nil, err
	}
	if f.previewLink, err = finder.Compile("div.magnet-name.column.is-four-fifths > a"); err != nil {
		return nil, err
	}

	return f, nil
}

// Source 实现finder.Finder
func (f *Javdb) Source() model.Source {
	return model.SourceJavdb
}

// Find 搜索列表页
func (f *Javdb) Find(ctx context.Context, keyword string) ([]model.FoundItem, error) {
	query := url.Values{}
	query.Set("q", keyword)
	query.Set("f", "all")
	searchURL := fmt.Sprintf("%s/search?%s", f.baseURL, query.Encode())

	doc, err := fetchDocument(ctx, f.client, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	items := make([]model.FoundItem, 0)
	doc.FindMatcher(f.homeItem).Each(func(i int, row *goquery.Selection) {
		preview := finder.FirstAttr(row, f.homeLink, "href")
		if preview != "" {
			preview = f.baseURL + preview
		}

		// 列表页不给体积，番号拼进标题展示
		title := finder.FirstAttr(row, f.homeLink, "title")
		if id := finder.FirstText(row, f.homeID); id != "" {
			title = strings.TrimSpace(id + " " + title)
		}

		items = append(items, &javdbItem{
			title:   title,
			date:    model.ParseDate(finder.FirstText(row, f.homeDate), "2006-01-02"),
			preview: preview,
		})
	})

	return items, nil
}

// LoadPreview 加载详情页，逐块解析磁力变体并按日期倒序
func (f *Javdb) LoadPreview(ctx context.Context, pageURL string) (model.FoundPreview, error) {
	doc, err := fetchDocument(ctx, f.client, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	root := doc.Selection

	images := make([]string, 0)
	doc.FindMatcher(f.previewSample).Each(func(i int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok {
			images = append(images, src)
		}
	})

	bounds := make([]model.Bound, 0)
	doc.FindMatcher(f.previewBound).Each(func(i int, block *goquery.Selection) {
		// 体积后面跟着文件数，截到首个逗号
		size := finder.FirstText(block, f.previewSize)
		if before, _, found := strings.Cut(size, ","); found {
			size = strings.TrimSpace(before)
		}

		magnet := finder.FirstAttr(block, f.previewLink, "href")
		if end := strings.Index(magnet, "&"); end >= 0 {
			magnet = magnet[:end]
		}

		bounds = append(bounds, boundData{
			size:   model.ParseSize(size),
			date:   model.ParseDate(finder.FirstText(block, f.previewDate), "2006-01-02"),
			magnet: magnet,
		})
	})

	// 最新的变体排最前
	sort.SliceStable(bounds, func(i, j int) bool {
		return bounds[j].Date().Less(bounds[i].Date())
	})

	return &javdbPreview{
		title:  finder.FirstText(root, f.previewTitle),
		bounds: bounds,
		images: images,
	}, nil
}

// javdbItem Javdb的搜索结果，列表页没有体积信息
type javdbItem struct {
	title   string
	date    model.Date
	preview string
}

func (i *javdbItem) Title() string { return i.title }

func (i *javdbItem) Size() model.Size { return model.NewSize(0) }

func (i *javdbItem) Date() model.Date { return i.date }

func (i *javdbItem) Preview() model.Previewable {
	return model.PreviewHandle{Source: model.SourceJavdb, URL: i.preview}
}

// javdbPreview Javdb的详情预览
type javdbPreview struct {
	title  string
	bounds []model.Bound
	images []string
}

func (p *javdbPreview) Title() string { return p.title }

func (p *javdbPreview) Bounds() []model.Bound { return p.bounds }

func (p *javdbPreview) Images() []string { return p.images }
