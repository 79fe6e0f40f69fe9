package model

import (
	"fmt"
	"strconv"
	"strings"
)

// 单位按1024进位，B为第0档
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Size 资源体积，保存字节数和渲染好的显示文本
// 排序只看字节数，显示文本仅用于展示
type Size struct {
	bytes   uint64
	display string
}

// NewSize 根据字节数构造Size
func NewSize(bytes uint64) Size {
	return Size{
		bytes:   bytes,
		display: formatSize(bytes),
	}
}

// ParseSize 解析来源页面里的体积文本，例如 "1.5 GB"
// 前缀取数字部分，后缀取单位部分，未知单位按0字节处理
func ParseSize(text string) Size {
	text = strings.TrimSpace(text)

	// 取开头的数字段（含小数点）
	numEnd := 0
	for numEnd < len(text) && (text[numEnd] >= '0' && text[numEnd] <= '9' || text[numEnd] == '.') {
		numEnd++
	}
	number, err := strconv.ParseFloat(text[:numEnd], 64)
	if err != nil {
		return NewSize(0)
	}

	unit := strings.ToUpper(strings.TrimSpace(text[numEnd:]))
	tier := -1
	for i, u := range sizeUnits {
		if unit == u {
			tier = i
			break
		}
	}
	if tier < 0 {
		return NewSize(0)
	}

	scale := 1.0
	for i := 0; i < tier; i++ {
		scale *= 1024
	}
	return NewSize(uint64(number * scale))
}

// Bytes 字节数
func (s Size) Bytes() uint64 {
	return s.bytes
}

// String 显示文本，例如 "512.00 MB"
func (s Size) String() string {
	return s.display
}

// Less 按字节数比较
func (s Size) Less(other Size) bool {
	return s.bytes < other.bytes
}

// formatSize 反复除以1024直到小于1024，保留两位小数
func formatSize(bytes uint64) string {
	value := float64(bytes)
	tier := 0
	for value >= 1024 && tier < len(sizeUnits)-1 {
		value /= 1024
		tier++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[tier])
}
