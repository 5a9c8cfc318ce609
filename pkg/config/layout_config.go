package config

// 布局配置常量
// 所有坐标使用逻辑屏幕坐标（Layout 返回的尺寸），原点在左上角

const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 800

	// MdBreakpoint 中等屏幕断点（像素）
	// 宽度 >= 此值时使用大号标题
	MdBreakpoint = 768

	// BarPadding 导航栏 / 页脚内边距
	BarPadding = 16.0

	// ContainerMaxWidth 内容容器最大宽度，超出时居中
	ContainerMaxWidth = 1280.0

	// LinkSpacing 导航链接之间的间距
	LinkSpacing = 16.0

	// ButtonPaddingX 按钮水平内边距
	ButtonPaddingX = 16.0

	// ButtonHeight 按钮高度
	ButtonHeight = 40.0

	// ButtonSpacing 按钮之间的间距
	ButtonSpacing = 16.0

	// HeroTitleMargin 标题与副标题之间的间距
	HeroTitleMargin = 32.0
)

// 字号（像素）
const (
	BrandFontSize       = 20.0
	NavFontSize         = 16.0
	HeroTitleFontSize   = 60.0 // >= MdBreakpoint
	HeroTitleFontSizeSm = 20.0
	SubtitleFontSize    = 18.0 // >= MdBreakpoint
	SubtitleFontSizeSm  = 14.0
	ButtonFontSize      = 14.0
	FooterFontSize      = 14.0
)

// HeroTitleSize 根据屏幕宽度返回标题字号
func HeroTitleSize(screenWidth int) float64 {
	if screenWidth >= MdBreakpoint {
		return HeroTitleFontSize
	}
	return HeroTitleFontSizeSm
}

// SubtitleSize 根据屏幕宽度返回副标题字号
func SubtitleSize(screenWidth int) float64 {
	if screenWidth >= MdBreakpoint {
		return SubtitleFontSize
	}
	return SubtitleFontSizeSm
}

// ContainerBounds 返回居中内容容器的左右边界
func ContainerBounds(screenWidth int) (left, right float64) {
	w := float64(screenWidth)
	contentWidth := w - 2*BarPadding
	if contentWidth > ContainerMaxWidth {
		contentWidth = ContainerMaxWidth
	}
	left = (w - contentWidth) / 2
	return left, left + contentWidth
}
