package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/web3events/landing/pkg/drift"
	"github.com/web3events/landing/pkg/pointcloud"
)

// LandingConfig 落地页配置
//
// 默认值见 DefaultLandingConfig，内嵌的 data/landing.yaml 与其保持一致；
// 通过 -config 指定的文件会覆盖在默认值之上（未出现的字段保持默认）。
type LandingConfig struct {
	Window WindowConfig `yaml:"window"`
	Globe  GlobeConfig  `yaml:"globe"`
	Camera CameraConfig `yaml:"camera"`
	Drift  drift.Config `yaml:"drift"`
	Theme  ThemeConfig  `yaml:"theme"`
	Nav    NavConfig    `yaml:"nav"`
	Hero   HeroConfig   `yaml:"hero"`
	Footer FooterConfig `yaml:"footer"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// GlobeConfig 地球（点云 + 线框球）配置
type GlobeConfig struct {
	// PointCount 点云点数
	PointCount int `yaml:"pointCount"`
	// PointSize 点的世界尺寸（随距离衰减）
	PointSize float64 `yaml:"pointSize"`
	// Saturation / Lightness 点颜色的 HSL 参数
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
	// RotationSpeed 绕竖直轴的角速度（弧度/秒）
	RotationSpeed float64 `yaml:"rotationSpeed"`
	// Sphere 线框球
	Sphere SphereConfig `yaml:"sphere"`
}

// SphereConfig 线框球配置
type SphereConfig struct {
	Radius         float64 `yaml:"radius"`
	WidthSegments  int     `yaml:"widthSegments"`
	HeightSegments int     `yaml:"heightSegments"`
	Color          string  `yaml:"color"`
}

// CameraConfig 透视相机配置
type CameraConfig struct {
	Position [3]float64 `yaml:"position"`
	// FOV 垂直视场角（度）
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
}

// ThemeConfig 配色
type ThemeConfig struct {
	// Background 背景竖直渐变的颜色站点（自上而下）
	Background []string `yaml:"background"`
	// BarOpacity 导航栏 / 页脚黑色遮罩的不透明度
	BarOpacity float64 `yaml:"barOpacity"`
	Text       string  `yaml:"text"`
	Brand      string  `yaml:"brand"`
	// SubtitleOpacity 副标题不透明度
	SubtitleOpacity float64 `yaml:"subtitleOpacity"`
}

// NavConfig 顶部导航栏
type NavConfig struct {
	Brand string       `yaml:"brand"`
	Links []LinkConfig `yaml:"links"`
}

// HeroConfig 中央标题区
type HeroConfig struct {
	Title    string       `yaml:"title"`
	Subtitle string       `yaml:"subtitle"`
	Buttons  []LinkConfig `yaml:"buttons"`
}

// FooterConfig 页脚
type FooterConfig struct {
	Copyright string       `yaml:"copyright"`
	Links     []LinkConfig `yaml:"links"`
}

// 按钮样式
const (
	VariantDefault   = "default"
	VariantGhost     = "ghost"
	VariantLink      = "link"
	VariantUnderline = "underline"
)

// LinkConfig 链接或按钮
// URL 为空时按钮不可点击（对应原页面中的 "#" 占位链接）
type LinkConfig struct {
	Label   string `yaml:"label"`
	URL     string `yaml:"url"`
	Variant string `yaml:"variant"`
}

// DefaultLandingConfig 返回默认配置
func DefaultLandingConfig() *LandingConfig {
	return &LandingConfig{
		Window: WindowConfig{
			Title:  "Web3Events.xyz",
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Globe: GlobeConfig{
			PointCount:    4000,
			PointSize:     0.02,
			Saturation:    0.7,
			Lightness:     0.5,
			RotationSpeed: 0.1,
			Sphere: SphereConfig{
				Radius:         10,
				WidthSegments:  65,
				HeightSegments: 72,
				Color:          "#675275",
			},
		},
		Camera: CameraConfig{
			Position: [3]float64{0, 0, 5},
			FOV:      75,
			Near:     0.1,
		},
		Drift: drift.DefaultConfig(),
		Theme: ThemeConfig{
			Background:      []string{"#111827", "#3b0764", "#2e1065"},
			BarOpacity:      0.3,
			Text:            "#ffffff",
			Brand:           "#a855f7",
			SubtitleOpacity: 0.7,
		},
		Nav: NavConfig{
			Brand: "Web3Events.xyz",
			Links: []LinkConfig{
				{Label: "Singapore", URL: "https://app.web3events.xyz/singapore", Variant: VariantLink},
				{Label: "Thailand", URL: "https://app.web3events.xyz/thailand", Variant: VariantLink},
			},
		},
		Hero: HeroConfig{
			Title:    "Discover Web3 Events",
			Subtitle: "Built for the degens, by the degens",
			Buttons: []LinkConfig{
				{Label: "Launch App", URL: "https://app.web3events.xyz", Variant: VariantDefault},
				{Label: "All Access NFT", URL: "https://mint.web3events.xyz", Variant: VariantGhost},
			},
		},
		Footer: FooterConfig{
			Copyright: "2024 © All rights reserved",
			Links: []LinkConfig{
				{Label: "Donate", URL: "https://basescan.org/address/0xc1F7D779c5EbE4715409D6158Af7f59B3F3ba991", Variant: VariantUnderline},
				{Label: "Promote event", URL: "", Variant: VariantUnderline},
			},
		},
	}
}

// ParseLandingConfig 在 base 的基础上解析 YAML 数据
//
// base 不会被修改；返回的配置已通过 Validate。
func ParseLandingConfig(data []byte, base *LandingConfig) (*LandingConfig, error) {
	if base == nil {
		base = DefaultLandingConfig()
	}
	cfg := base.clone()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse landing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid landing config: %w", err)
	}
	return cfg, nil
}

// LoadLandingConfig 从文件加载配置并覆盖在 base 之上
func LoadLandingConfig(path string, base *LandingConfig) (*LandingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read landing config: %w", err)
	}
	return ParseLandingConfig(data, base)
}

// Validate 验证配置有效性
func (c *LandingConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	g := c.Globe
	if g.PointCount < 0 {
		return fmt.Errorf("globe pointCount must not be negative, got %d", g.PointCount)
	}
	if g.PointSize <= 0 {
		return fmt.Errorf("globe pointSize must be positive, got %.3f", g.PointSize)
	}
	if g.Saturation < 0 || g.Saturation > 1 || g.Lightness < 0 || g.Lightness > 1 {
		return fmt.Errorf("globe saturation/lightness must be in [0, 1], got %.2f/%.2f", g.Saturation, g.Lightness)
	}
	if g.Sphere.Radius <= 0 {
		return fmt.Errorf("sphere radius must be positive, got %.3f", g.Sphere.Radius)
	}
	if g.Sphere.WidthSegments < 3 || g.Sphere.HeightSegments < 2 {
		return fmt.Errorf("sphere segments too small: %dx%d", g.Sphere.WidthSegments, g.Sphere.HeightSegments)
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %.1f", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 {
		return fmt.Errorf("camera near must be positive, got %.3f", c.Camera.Near)
	}

	if err := c.Drift.Validate(); err != nil {
		return err
	}

	if len(c.Theme.Background) == 0 {
		return fmt.Errorf("theme background needs at least one color")
	}
	colors := append([]string{g.Sphere.Color, c.Theme.Text, c.Theme.Brand}, c.Theme.Background...)
	for _, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("invalid color %q: %w", hex, err)
		}
	}

	for _, group := range [][]LinkConfig{c.Nav.Links, c.Hero.Buttons, c.Footer.Links} {
		for _, l := range group {
			if l.Label == "" {
				return fmt.Errorf("link with url %q has an empty label", l.URL)
			}
			switch l.Variant {
			case VariantDefault, VariantGhost, VariantLink, VariantUnderline:
			default:
				return fmt.Errorf("link %q: unknown variant %q", l.Label, l.Variant)
			}
		}
	}
	return nil
}

// PointCloudOptions 点云颜色参数
func (c *LandingConfig) PointCloudOptions() pointcloud.Options {
	return pointcloud.Options{
		Saturation: c.Globe.Saturation,
		Lightness:  c.Globe.Lightness,
	}
}

// clone 深拷贝（切片字段独立）
func (c *LandingConfig) clone() *LandingConfig {
	out := *c
	out.Theme.Background = append([]string(nil), c.Theme.Background...)
	out.Nav.Links = append([]LinkConfig(nil), c.Nav.Links...)
	out.Hero.Buttons = append([]LinkConfig(nil), c.Hero.Buttons...)
	out.Footer.Links = append([]LinkConfig(nil), c.Footer.Links...)
	return &out
}

// ParseColor 将 "#rrggbb" 解析为 color.RGBA，解析失败返回白色
// 配置经过 Validate 后不会失败
func ParseColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
