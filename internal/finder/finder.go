package finder

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"cilisou/internal/model"
)

// Finder 搜索源适配器的统一契约
// 每个站点实现一份：按关键词搜索列表页，按定位串加载详情预览
type Finder interface {
	// Source 该源的注册表标识
	Source() model.Source

	// Find 搜索关键词，返回解析后的结果列表
	// 单行字段缺失降级为默认值，不中断整次调用
	Find(ctx context.Context, keyword string) ([]model.FoundItem, error)

	// LoadPreview 加载一条结果的详情预览
	LoadPreview(ctx context.Context, pageURL string) (model.FoundPreview, error)
}

// Compile 在构造期编译CSS选择器
// 选择器是静态字面量，编译失败视为程序错误，构造直接失败
func Compile(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, &ParseError{Selector: selector}
	}
	return sel, nil
}

// FirstText 取首个匹配节点的文本，无匹配返回空串
func FirstText(s *goquery.Selection, sel cascadia.Selector) string {
	return strings.TrimSpace(s.FindMatcher(sel).First().Text())
}

// FirstAttr 取首个匹配节点的属性值，无匹配或无属性返回空串
func FirstAttr(s *goquery.Selection, sel cascadia.Selector, attr string) string {
	value, _ := s.FindMatcher(sel).First().Attr(attr)
	return value
}
