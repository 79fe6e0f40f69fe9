package finders

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"cilisou/internal/finder"
	"cilisou/internal/model"
)

const madouBaseURL = "https://hxx.533923.xyz"

// Madou 麻豆资源列表站，标题经过base64混淆
type Madou struct {
	client  *http.Client
	baseURL string

	homeItem    cascadia.Selector
	homeTitle   cascadia.Selector
	homePreview cascadia.Selector
	homeSize    cascadia.Selector
	homeDate    cascadia.Selector

	previewTitle  cascadia.Selector
	previewSize   cascadia.Selector
	previewDate   cascadia.Selector
	previewMagnet cascadia.Selector
	previewImage  cascadia.Selector
}

// NewMadou 创建麻豆适配器
func NewMadou(client *http.Client) (*Madou, error) {
	f := &Madou{client: client, baseURL: madouBaseURL}

	var err error
	if f.homeItem, err = finder.Compile("tr.default"); err != nil {
		return nil, err
	}
	if f.homeTitle, err = finder.Compile("td:nth-child(2) > a > span"); err != nil {
		return nil, err
	}
	if f.homePreview, err = finder.Compile("td:nth-child(2) > a"); err != nil {
		return nil, err
	}
	if f.homeSize, err = finder.Compile("td:nth-child(3)"); err != nil {
		return nil, err
	}
	if f.homeDate, err = finder.Compile("td:nth-child(1)"); err != nil {
		return nil, err
	}
	if f.previewTitle, err = finder.Compile("body > div:nth-child(5) > div:nth-child(1) > div.panel-heading > h3"); err != nil {
		return nil, err
	}
	if f.previewSize, err = finder.Compile("body > div:nth-child(5) > div:nth-child(1) > div.panel-body > div:nth-child(2) > div:nth-child(2)"); err != nil {
		return nil, err
	}
	if f.previewDate, err = finder.Compile("body > div:nth-child(5) > div:nth-child(1) > div.panel-body > div:nth-child(1) > div:nth-child(2)"); err != nil {
		return nil, err
	}
	if f.previewMagnet, err = finder.Compile("body > div:nth-child(5) > div.download > div > a:nth-child(2)"); err != nil {
		return nil, err
	}
	if f.previewImage, err = finder.Compile("#torrent-description > div > img"); err != nil {
		return nil, err
	}

	return f, nil
}

// Source 实现finder.Finder
func (f *Madou) Source() model.Source {
	return model.SourceMadou
}

// Find 表单POST搜索列表页
func (f *Madou) Find(ctx context.Context, keyword string) ([]model.FoundItem, error) {
	form := url.Values{}
	form.Set("keyword", keyword)
	searchURL := fmt.Sprintf("%s/search.php", f.baseURL)

	doc, err := fetchDocument(ctx, f.client, http.MethodPost, searchURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	items := make([]model.FoundItem, 0)
	doc.FindMatcher(f.homeItem).Each(func(i int, row *goquery.Selection) {
		preview := finder.FirstAttr(row, f.homePreview, "href")
		if preview != "" {
			preview = f.baseURL + preview
		}

		items = append(items, &madouItem{
			title:   decodeObfuscatedTitle(finder.FirstText(row, f.homeTitle)),
			size:    model.ParseSize(finder.FirstText(row, f.homeSize)),
			date:    parseMadouDate(finder.FirstText(row, f.homeDate)),
			preview: preview,
		})
	})

	return items, nil
}

// LoadPreview 加载详情页
func (f *Madou) LoadPreview(ctx context.Context, pageURL string) (model.FoundPreview, error) {
	doc, err := fetchDocument(ctx, f.client, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	root := doc.Selection

	images := make([]string, 0)
	doc.FindMatcher(f.previewImage).Each(func(i int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok {
			images = append(images, src)
		}
	})

	bound := boundData{
		size:   model.ParseSize(finder.FirstText(root, f.previewSize)),
		date:   model.ParseDate(finder.FirstText(root, f.previewDate), "2006-01-02"),
		magnet: finder.FirstAttr(root, f.previewMagnet, "href"),
	}

	return &madouPreview{
		title:  decodeObfuscatedTitle(finder.FirstText(root, f.previewTitle)),
		bounds: []model.Bound{bound},
		images: images,
	}, nil
}

// decodeObfuscatedTitle 解开站点内嵌脚本里的混淆标题
// 原文形如 document.write(xxx('BASE64==')), 取第二个单引号分段再base64解码
// 解码失败返回空标题而不是报错
func decodeObfuscatedTitle(raw string) string {
	parts := strings.Split(raw, "'")
	if len(parts) < 2 {
		return ""
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}
	return string(decoded)
}

// parseMadouDate 该站列表页只给"月-日"，按站点的归档惯例推成去年
// 跨年前后会差一年，属于已知的近似
func parseMadouDate(text string) model.Date {
	now := time.Now()
	month, day := int(now.Month()), now.Day()

	if monthStr, dayStr, found := strings.Cut(strings.TrimSpace(text), "-"); found {
		if m, err := strconv.Atoi(monthStr); err == nil {
			month = m
		}
		if d, err := strconv.Atoi(dayStr); err == nil {
			day = d
		}
	}

	return model.DateFromYMD(now.Year()-1, time.Month(month), day)
}

// madouItem 麻豆的搜索结果
type madouItem struct {
	title   string
	size    model.Size
	date    model.Date
	preview string
}

func (i *madouItem) Title() string { return i.title }

func (i *madouItem) Size() model.Size { return i.size }

func (i *madouItem) Date() model.Date { return i.date }

func (i *madouItem) Preview() model.Previewable {
	return model.PreviewHandle{Source: model.SourceMadou, URL: i.preview}
}

// madouPreview 麻豆的详情预览
type madouPreview struct {
	title  string
	bounds []model.Bound
	images []string
}

func (p *madouPreview) Title() string { return p.title }

func (p *madouPreview) Bounds() []model.Bound { return p.bounds }

func (p *madouPreview) Images() []string { return p.images }
