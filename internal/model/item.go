package model

import (
	"encoding/json"
	"fmt"
)

// Source 搜索源标识，作为路由预览请求的注册表键
// 用枚举而不是裸字符串，保证各源之间不会撞键
type Source int

const (
	SourceUnknown Source = iota
	SourceU3C3
	SourceJavdb
	SourceMadou
)

var sourceNames = map[Source]string{
	SourceU3C3:  "u3c3",
	SourceJavdb: "javdb",
	SourceMadou: "madou",
}

// String 源的稳定名称
func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON 序列化为源名称
func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON 按源名称反序列化，未知名称归为SourceUnknown
func (s *Source) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("解析源名称失败: %w", err)
	}
	for src, n := range sourceNames {
		if n == name {
			*s = src
			return nil
		}
	}
	*s = SourceUnknown
	return nil
}

// FoundItem 一条搜索结果，调用方只通过该能力接口访问
type FoundItem interface {
	Title() string
	Size() Size
	Date() Date
	Preview() Previewable
}

// Previewable 预览句柄，携带源标识和该源加载预览所需的定位串
// 搜索时生成，预览时原样带回，查询是幂等的，可以重复使用
type Previewable interface {
	PreviewURL() (Source, string)
}

// Bound 预览里的一个磁力变体，带各自的体积和日期
type Bound interface {
	Size() Size
	Date() Date
	Magnet() string
}

// FoundPreview 一条结果的详情预览
type FoundPreview interface {
	Title() string
	Bounds() []Bound
	Images() []string
}

// PreviewHandle 可序列化的预览句柄，在HTTP接口两侧往返
type PreviewHandle struct {
	Source Source `json:"source"`
	URL    string `json:"url"`
}

// PreviewURL 实现Previewable
func (h PreviewHandle) PreviewURL() (Source, string) {
	return h.Source, h.URL
}
