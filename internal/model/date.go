package model

import (
	"strings"
	"time"
)

// Date 发布日期，保存时间戳和渲染好的显示文本
// 排序只看时间戳
type Date struct {
	time    time.Time
	display string
}

// NewDate 根据时间构造Date
func NewDate(t time.Time) Date {
	return Date{
		time:    t,
		display: t.Format("2006-01-02"),
	}
}

// ParseDate 按给定布局解析纯日期文本，时间补到零点
// 来源页面不可靠，解析失败返回零值日期而不是错误
func ParseDate(text, layout string) Date {
	t, err := time.Parse(layout, strings.TrimSpace(text))
	if err != nil {
		return NewDate(time.Time{})
	}
	return NewDate(t)
}

// ParseDateTime 按给定布局解析日期加时间文本，失败同样返回零值
func ParseDateTime(text, layout string) Date {
	t, err := time.Parse(layout, strings.TrimSpace(text))
	if err != nil {
		return Date{time: time.Time{}, display: time.Time{}.Format("2006-01-02 15:04:05")}
	}
	return Date{time: t, display: t.Format("2006-01-02 15:04:05")}
}

// DateFromYMD 按年月日构造，月日非法时由time包自动归一
func DateFromYMD(year int, month time.Month, day int) Date {
	return NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// Time 时间戳
func (d Date) Time() time.Time {
	return d.time
}

// String 显示文本
func (d Date) String() string {
	return d.display
}

// Less 按时间戳比较
func (d Date) Less(other Date) bool {
	return d.time.Before(other.time)
}
