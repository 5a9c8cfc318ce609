package components

import "image/color"

// ButtonVariant 按钮样式
type ButtonVariant int

const (
	// ButtonVariantDefault 实心按钮（浅色背景 + 深色文字）
	ButtonVariantDefault ButtonVariant = iota
	// ButtonVariantGhost 透明按钮，悬停时显示浅色背景
	ButtonVariantGhost
	// ButtonVariantLink 文字链接，悬停时放大
	ButtonVariantLink
	// ButtonVariantUnderline 文字链接，悬停时显示下划线
	ButtonVariantUnderline
)

// ButtonComponent 按钮 / 链接组件（ECS 架构）
//
// 设计原则：
//   - 纯数据组件，交互逻辑在 ButtonSystem，绘制在 UIRenderSystem
//   - Bounds 由场景每帧根据屏幕尺寸重新布局
//   - URL 为空时按钮处于禁用状态
type ButtonComponent struct {
	// Label 按钮上显示的文字
	Label string
	// URL 点击后打开的地址
	URL string
	// Variant 样式
	Variant ButtonVariant
	// FontSize 字号（像素）
	FontSize float64
	// TextColor 文字颜色
	TextColor color.RGBA

	// Bounds 可点击区域（屏幕坐标）
	Bounds Rect

	// State 当前交互状态
	State UIState
	// Enabled 是否响应点击
	Enabled bool
	// HoverProgress 悬停过渡进度 [0, 1]，用于缩放 / 背景渐变
	HoverProgress float64
	// Armed 本次按下开始于按钮内部；只有 Armed 的释放才算点击
	Armed bool

	// OnClick 点击回调
	OnClick func()
}
