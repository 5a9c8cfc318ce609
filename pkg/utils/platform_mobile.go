//go:build mobile

package utils

// IsMobile ebitenmobile 构建始终为 true，指针只来自触摸
func IsMobile() bool { return true }
