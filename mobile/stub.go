//go:build !mobile

// Package mobile 是 ebitenmobile bind 的入口
//
// 普通构建只编译这个文件，落地页的移动端初始化在 mobile.go（-tags mobile）。
package mobile

// Dummy 让 gomobile 在桌面构建中也能找到导出符号
func Dummy() {}
