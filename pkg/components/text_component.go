package components

import "image/color"

// TextAlign 文字水平对齐
type TextAlign int

const (
	TextAlignStart TextAlign = iota
	TextAlignCenter
	TextAlignEnd
)

// TextComponent 静态文字
// (X, Y) 为锚点：Align 决定水平方向的对齐方式，Y 为文字顶部
type TextComponent struct {
	Text     string
	FontSize float64
	Color    color.RGBA
	Opacity  float64
	Bold     bool
	Align    TextAlign
	X, Y     float64
}

// PanelComponent 半透明矩形（导航栏 / 页脚背景）
type PanelComponent struct {
	Bounds Rect
	Color  color.RGBA
	// Opacity 不透明度 [0, 1]
	Opacity float64
}

// LayerComponent 绘制层级，数值小的先绘制
type LayerComponent struct {
	Layer int
}
