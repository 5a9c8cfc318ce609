package scenes

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/web3events/landing/pkg/components"
	"github.com/web3events/landing/pkg/config"
	"github.com/web3events/landing/pkg/drift"
	"github.com/web3events/landing/pkg/ecs"
	"github.com/web3events/landing/pkg/game"
	"github.com/web3events/landing/pkg/pointcloud"
	"github.com/web3events/landing/pkg/render"
	"github.com/web3events/landing/pkg/systems"
	"github.com/web3events/landing/pkg/utils"
)

// lineHeightFactor 行高 / 字号
const lineHeightFactor = 1.5

// 面板层级
const (
	layerBars = 10
)

// LandingSceneOptions 创建落地页场景所需的依赖
type LandingSceneOptions struct {
	Config *config.LandingConfig
	Fonts  systems.FontProvider
	Opener game.LinkOpener
	// Rand 点云与漂移共用的随机源，nil 时使用固定种子 1
	Rand *rand.Rand
	// Pointer 指针输入，nil 时读取真实鼠标 / 触摸
	Pointer systems.PointerReader
	// SetCursor 设置光标形状，nil 时使用 ebiten.SetCursorShape
	SetCursor func(ebiten.CursorShapeType)
}

// LandingScene 落地页场景
//
// 组成：
//   - 背景竖直渐变
//   - 地球：漂移分组 + 线框球 + 点云（两者同速自转）
//   - 顶部导航栏、中央标题区、底部页脚
//
// OnEnter 启动漂移定时器，OnExit 停止；布局每帧按屏幕尺寸重新计算。
type LandingScene struct {
	cfg    *config.LandingConfig
	fonts  systems.FontProvider
	opener game.LinkOpener

	entityManager *ecs.EntityManager
	animator      *drift.Animator
	handle        *drift.Handle

	rotationSystem    *systems.RotationSystem
	driftSystem       *systems.DriftSystem
	buttonSystem      *systems.ButtonSystem
	globeRenderSystem *systems.GlobeRenderSystem
	uiRenderSystem    *systems.UIRenderSystem

	background []render.Color
	bgBatch    *render.Batch

	// 实体
	globeGroup    ecs.EntityID
	navPanel      ecs.EntityID
	footerPanel   ecs.EntityID
	brandText     ecs.EntityID
	titleText     ecs.EntityID
	subtitleText  ecs.EntityID
	copyrightText ecs.EntityID
	navLinks      []ecs.EntityID
	heroButtons   []ecs.EntityID
	footerLinks   []ecs.EntityID

	screenWidth  int
	screenHeight int

	setCursor   func(ebiten.CursorShapeType)
	cursorShape ebiten.CursorShapeType
}

// NewLandingScene 创建落地页场景
// 返回的场景尚未启动漂移定时器，需要由 SceneManager.SwitchTo 触发 OnEnter
func NewLandingScene(opts LandingSceneOptions) *LandingScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultLandingConfig()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	setCursor := opts.SetCursor
	if setCursor == nil {
		setCursor = ebiten.SetCursorShape
	}

	em := ecs.NewEntityManager()
	cam := cfg.Camera
	camera := render.NewCamera(utils.Vec3{X: cam.Position[0], Y: cam.Position[1], Z: cam.Position[2]}, cam.FOV, cam.Near)

	s := &LandingScene{
		cfg:               cfg,
		fonts:             opts.Fonts,
		opener:            opts.Opener,
		entityManager:     em,
		animator:          drift.NewAnimator(cfg.Drift, rng),
		rotationSystem:    systems.NewRotationSystem(em),
		driftSystem:       systems.NewDriftSystem(em),
		buttonSystem:      systems.NewButtonSystem(em, opts.Pointer),
		globeRenderSystem: systems.NewGlobeRenderSystem(em, camera),
		uiRenderSystem:    systems.NewUIRenderSystem(em, opts.Fonts),
		bgBatch:           render.NewBatch(8),
		screenWidth:       cfg.Window.Width,
		screenHeight:      cfg.Window.Height,
		setCursor:         setCursor,
		cursorShape:       ebiten.CursorShapeDefault,
	}

	for _, hex := range cfg.Theme.Background {
		s.background = append(s.background, render.ColorFromRGBA(config.ParseColor(hex), 1))
	}

	s.createGlobe(rng)
	s.createPage()

	s.rotationSystem.Refresh()
	s.driftSystem.Refresh()

	s.Layout(s.screenWidth, s.screenHeight)

	log.Printf("[LandingScene] 创建完成: %d 个点, %d 个实体", cfg.Globe.PointCount, em.Count())
	return s
}

// createGlobe 创建地球实体：漂移分组 + 线框球 + 点云
func (s *LandingScene) createGlobe(rng *rand.Rand) {
	em := s.entityManager
	g := s.cfg.Globe

	s.globeGroup = em.CreateEntity()
	ecs.AddComponent(em, s.globeGroup, &components.TransformComponent{})
	ecs.AddComponent(em, s.globeGroup, &components.DriftComponent{Animator: s.animator})

	sphere := em.CreateEntity()
	ecs.AddComponent(em, sphere, &components.TransformComponent{})
	ecs.AddComponent(em, sphere, &components.GroupComponent{Parent: s.globeGroup})
	ecs.AddComponent(em, sphere, &components.RotatorComponent{AngularSpeed: g.RotationSpeed})
	ecs.AddComponent(em, sphere, &components.WireSphereComponent{
		Radius:         g.Sphere.Radius,
		WidthSegments:  g.Sphere.WidthSegments,
		HeightSegments: g.Sphere.HeightSegments,
		Color:          config.ParseColor(g.Sphere.Color),
	})

	cloud := em.CreateEntity()
	ecs.AddComponent(em, cloud, &components.TransformComponent{})
	ecs.AddComponent(em, cloud, &components.GroupComponent{Parent: s.globeGroup})
	ecs.AddComponent(em, cloud, &components.RotatorComponent{AngularSpeed: g.RotationSpeed})
	ecs.AddComponent(em, cloud, &components.PointCloudComponent{
		Cloud: pointcloud.Generate(g.PointCount, rng, s.cfg.PointCloudOptions()),
		Size:  g.PointSize,
	})
}

// createPage 创建导航栏、标题区和页脚实体；位置在 Layout 中计算
func (s *LandingScene) createPage() {
	em := s.entityManager
	theme := s.cfg.Theme
	textColor := config.ParseColor(theme.Text)
	barColor := config.ParseColor("#000000")

	s.navPanel = em.CreateEntity()
	ecs.AddComponent(em, s.navPanel, &components.PanelComponent{Color: barColor, Opacity: theme.BarOpacity})
	ecs.AddComponent(em, s.navPanel, &components.LayerComponent{Layer: layerBars})

	s.footerPanel = em.CreateEntity()
	ecs.AddComponent(em, s.footerPanel, &components.PanelComponent{Color: barColor, Opacity: theme.BarOpacity})
	ecs.AddComponent(em, s.footerPanel, &components.LayerComponent{Layer: layerBars})

	s.brandText = s.createText(s.cfg.Nav.Brand, config.BrandFontSize, config.ParseColor(theme.Brand), 1, true, components.TextAlignStart)
	s.titleText = s.createText(s.cfg.Hero.Title, config.HeroTitleFontSize, textColor, 1, true, components.TextAlignCenter)
	s.subtitleText = s.createText(s.cfg.Hero.Subtitle, config.SubtitleFontSize, textColor, theme.SubtitleOpacity, false, components.TextAlignCenter)
	s.copyrightText = s.createText(s.cfg.Footer.Copyright, config.FooterFontSize, textColor, 1, false, components.TextAlignStart)

	for _, l := range s.cfg.Nav.Links {
		s.navLinks = append(s.navLinks, s.createButton(l, config.NavFontSize, textColor))
	}
	for _, l := range s.cfg.Hero.Buttons {
		s.heroButtons = append(s.heroButtons, s.createButton(l, config.ButtonFontSize, textColor))
	}
	for _, l := range s.cfg.Footer.Links {
		s.footerLinks = append(s.footerLinks, s.createButton(l, config.FooterFontSize, textColor))
	}
}

func (s *LandingScene) createText(str string, size float64, clr color.RGBA, opacity float64, bold bool, align components.TextAlign) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.TextComponent{
		Text:     str,
		FontSize: size,
		Color:    clr,
		Opacity:  opacity,
		Bold:     bold,
		Align:    align,
	})
	return id
}

func (s *LandingScene) createButton(l config.LinkConfig, size float64, clr color.RGBA) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	link := l
	ecs.AddComponent(s.entityManager, id, &components.ButtonComponent{
		Label:     link.Label,
		URL:       link.URL,
		Variant:   buttonVariant(link.Variant),
		FontSize:  size,
		TextColor: clr,
		State:     components.UINormal,
		Enabled:   link.URL != "",
		OnClick:   func() { s.openLink(link) },
	})
	return id
}

// openLink 打开按钮对应的链接，失败只记录日志
func (s *LandingScene) openLink(l config.LinkConfig) {
	if s.opener == nil || l.URL == "" {
		return
	}
	if err := s.opener.Open(l.URL); err != nil {
		log.Printf("[LandingScene] 无法打开 %q (%s): %v", l.Label, l.URL, err)
	}
}

func buttonVariant(v string) components.ButtonVariant {
	switch v {
	case config.VariantGhost:
		return components.ButtonVariantGhost
	case config.VariantLink:
		return components.ButtonVariantLink
	case config.VariantUnderline:
		return components.ButtonVariantUnderline
	default:
		return components.ButtonVariantDefault
	}
}

// OnEnter 场景激活：启动漂移定时器
func (s *LandingScene) OnEnter() {
	s.handle = s.animator.Start()
	log.Printf("[LandingScene] 进入场景，漂移间隔 %.1fs", s.cfg.Drift.Interval)
}

// OnExit 场景退出：停止漂移定时器并恢复光标
func (s *LandingScene) OnExit() {
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}
	s.applyCursor(ebiten.CursorShapeDefault)
	log.Printf("[LandingScene] 退出场景")
}

// Update 更新交互、漂移和旋转
func (s *LandingScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
	s.driftSystem.Update(deltaTime)
	s.rotationSystem.Update(deltaTime)

	if s.buttonSystem.Hovering() {
		s.applyCursor(ebiten.CursorShapePointer)
	} else {
		s.applyCursor(ebiten.CursorShapeDefault)
	}
}

func (s *LandingScene) applyCursor(shape ebiten.CursorShapeType) {
	if shape == s.cursorShape {
		return
	}
	s.cursorShape = shape
	s.setCursor(shape)
}

// Draw 绘制背景、地球和页面
func (s *LandingScene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Dx() != s.screenWidth || b.Dy() != s.screenHeight {
		s.Layout(b.Dx(), b.Dy())
	}

	s.bgBatch.Reset()
	render.AddGradientStops(s.bgBatch, float64(b.Dx()), float64(b.Dy()), s.background)
	s.bgBatch.Flush(screen)

	s.globeRenderSystem.Draw(screen)
	s.uiRenderSystem.Draw(screen)
}

// Layout 按屏幕尺寸重新计算所有 UI 元素的位置
func (s *LandingScene) Layout(width, height int) {
	s.screenWidth, s.screenHeight = width, height
	w, h := float64(width), float64(height)
	left, right := config.ContainerBounds(width)

	// 导航栏
	navHeight := 2*config.BarPadding + config.BrandFontSize*lineHeightFactor
	s.panel(s.navPanel).Bounds = components.Rect{X: 0, Y: 0, Width: w, Height: navHeight}
	s.placeTextMiddle(s.brandText, left, navHeight/2)
	s.layoutLinksRight(s.navLinks, right, navHeight/2)

	// 标题区
	title := s.text(s.titleText)
	title.FontSize = config.HeroTitleSize(width)
	subtitle := s.text(s.subtitleText)
	subtitle.FontSize = config.SubtitleSize(width)

	_, titleH := s.measure(title.Text, title.FontSize, true)
	_, subtitleH := s.measure(subtitle.Text, subtitle.FontSize, false)
	blockH := titleH + config.HeroTitleMargin + subtitleH + config.HeroTitleMargin + config.ButtonHeight
	top := (h - blockH) / 2

	title.X, title.Y = w/2, top
	subtitle.X, subtitle.Y = w/2, top+titleH+config.HeroTitleMargin
	s.layoutButtonsCentered(s.heroButtons, w/2, subtitle.Y+subtitleH+config.HeroTitleMargin)

	// 页脚
	footerHeight := 2*config.BarPadding + config.FooterFontSize*lineHeightFactor
	footerY := h - footerHeight
	s.panel(s.footerPanel).Bounds = components.Rect{X: 0, Y: footerY, Width: w, Height: footerHeight}
	s.placeTextMiddle(s.copyrightText, left, footerY+footerHeight/2)
	s.layoutLinksRight(s.footerLinks, right, footerY+footerHeight/2)
}

// placeTextMiddle 将文字左对齐放在 x，竖直居中于 cy
func (s *LandingScene) placeTextMiddle(id ecs.EntityID, x, cy float64) {
	tc := s.text(id)
	_, th := s.measure(tc.Text, tc.FontSize, tc.Bold)
	tc.X, tc.Y = x, cy-th/2
}

// layoutLinksRight 从右向左排列链接
func (s *LandingScene) layoutLinksRight(ids []ecs.EntityID, right, cy float64) {
	x := right
	for i := len(ids) - 1; i >= 0; i-- {
		bc := s.button(ids[i])
		bw, bh := s.buttonSize(bc)
		x -= bw
		bc.Bounds = components.Rect{X: x, Y: cy - bh/2, Width: bw, Height: bh}
		x -= config.LinkSpacing
	}
}

// layoutButtonsCentered 将按钮横向排成一行并居中于 cx
func (s *LandingScene) layoutButtonsCentered(ids []ecs.EntityID, cx, y float64) {
	total := 0.0
	for i, id := range ids {
		bw, _ := s.buttonSize(s.button(id))
		total += bw
		if i > 0 {
			total += config.ButtonSpacing
		}
	}

	x := cx - total/2
	for _, id := range ids {
		bc := s.button(id)
		bw, bh := s.buttonSize(bc)
		bc.Bounds = components.Rect{X: x, Y: y, Width: bw, Height: bh}
		x += bw + config.ButtonSpacing
	}
}

// buttonSize 实心 / 透明按钮带内边距和固定高度，链接只占文字大小
func (s *LandingScene) buttonSize(bc *components.ButtonComponent) (float64, float64) {
	tw, th := s.measure(bc.Label, bc.FontSize, false)
	switch bc.Variant {
	case components.ButtonVariantDefault, components.ButtonVariantGhost:
		return tw + 2*config.ButtonPaddingX, config.ButtonHeight
	default:
		return tw, th
	}
}

// measure 测量单行文字；没有字体时按字号估算
func (s *LandingScene) measure(str string, size float64, bold bool) (float64, float64) {
	if s.fonts == nil {
		return float64(len([]rune(str))) * size * 0.5, size * lineHeightFactor
	}
	return text.Measure(str, s.fonts.Face(size, bold), 0)
}

func (s *LandingScene) text(id ecs.EntityID) *components.TextComponent {
	tc, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
	return tc
}

func (s *LandingScene) panel(id ecs.EntityID) *components.PanelComponent {
	pc, _ := ecs.GetComponent[*components.PanelComponent](s.entityManager, id)
	return pc
}

func (s *LandingScene) button(id ecs.EntityID) *components.ButtonComponent {
	bc, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	return bc
}

// Button 按标签查找按钮 / 链接
func (s *LandingScene) Button(label string) (*components.ButtonComponent, bool) {
	for _, group := range [][]ecs.EntityID{s.navLinks, s.heroButtons, s.footerLinks} {
		for _, id := range group {
			if bc := s.button(id); bc.Label == label {
				return bc, true
			}
		}
	}
	return nil, false
}

// Animator 返回驱动地球漂移的动画器
func (s *LandingScene) Animator() *drift.Animator {
	return s.animator
}

// GlobePosition 返回地球分组当前的位置
func (s *LandingScene) GlobePosition() utils.Vec3 {
	tc, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.globeGroup)
	return tc.Position
}

// EntityManager 返回场景的实体管理器
func (s *LandingScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
