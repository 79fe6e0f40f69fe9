package finder

import (
	"errors"
	"fmt"
)

// 错误文本直接作为提示展示给用户，必须自成一句
var (
	// ErrBuildClient HTTP客户端构造失败，聚合器构造时的致命错误
	ErrBuildClient = errors.New("初始化HTTP客户端失败")

	// ErrSourceNotFound 预览句柄里的源标识没有对应的搜索源
	// 只会出现在句柄跨聚合器实例使用或注册表构造不一致时，属于程序错误
	ErrSourceNotFound = errors.New("未找到句柄对应的搜索源")
)

// ParseError CSS选择器编译失败，携带出错的选择器文本
// 选择器都是静态字面量，该错误在构造期就会暴露
type ParseError struct {
	Selector string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("CSS选择器解析失败: %s", e.Selector)
}

// NetworkError 传输层错误（DNS、TLS、超时等）
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("网络请求失败: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
