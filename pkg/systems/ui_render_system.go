package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/web3events/landing/pkg/components"
	"github.com/web3events/landing/pkg/ecs"
	"github.com/web3events/landing/pkg/render"
	"github.com/web3events/landing/pkg/utils"
)

// FontProvider 按字号提供字体
type FontProvider interface {
	Face(size float64, bold bool) *text.GoTextFace
}

// LinkHoverScale 链接悬停时的最大缩放
const LinkHoverScale = 1.2

var (
	defaultButtonBackground = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	defaultButtonText       = color.RGBA{R: 24, G: 24, B: 27, A: 255}
	ghostHoverBackground    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// UIRenderSystem 绘制面板、文字和按钮
//
// 绘制顺序：面板（按 LayerComponent）→ 文字 → 按钮
type UIRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         FontProvider
	batch         *render.Batch
}

// NewUIRenderSystem 创建 UI 渲染系统
func NewUIRenderSystem(em *ecs.EntityManager, fonts FontProvider) *UIRenderSystem {
	return &UIRenderSystem{
		entityManager: em,
		fonts:         fonts,
		batch:         render.NewBatch(32),
	}
}

// Draw 绘制所有 UI 元素
func (s *UIRenderSystem) Draw(screen *ebiten.Image) {
	s.drawPanels(screen)

	for _, id := range ecs.GetEntitiesWith1[*components.TextComponent](s.entityManager) {
		tc, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
		s.drawText(screen, tc)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		bc, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		s.drawButton(screen, bc)
	}
}

func (s *UIRenderSystem) drawPanels(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith1[*components.PanelComponent](s.entityManager)
	sort.SliceStable(ids, func(i, j int) bool {
		return s.layerOf(ids[i]) < s.layerOf(ids[j])
	})

	s.batch.Reset()
	for _, id := range ids {
		pc, _ := ecs.GetComponent[*components.PanelComponent](s.entityManager, id)
		r := pc.Bounds
		s.batch.AddRect(r.X, r.Y, r.Width, r.Height, render.ColorFromRGBA(pc.Color, pc.Opacity))
	}
	s.batch.Flush(screen)
}

func (s *UIRenderSystem) layerOf(id ecs.EntityID) int {
	if lc, ok := ecs.GetComponent[*components.LayerComponent](s.entityManager, id); ok {
		return lc.Layer
	}
	return 0
}

// face 返回字体；没有 FontProvider 时不绘制文字
func (s *UIRenderSystem) face(size float64, bold bool) (*text.GoTextFace, bool) {
	if s.fonts == nil {
		return nil, false
	}
	f := s.fonts.Face(size, bold)
	return f, f != nil
}

func (s *UIRenderSystem) drawText(screen *ebiten.Image, tc *components.TextComponent) {
	face, ok := s.face(tc.FontSize, tc.Bold)
	if !ok {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(tc.X, tc.Y)
	op.ColorScale.ScaleWithColor(tc.Color)
	op.ColorScale.ScaleAlpha(float32(tc.Opacity))
	switch tc.Align {
	case components.TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case components.TextAlignEnd:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(screen, tc.Text, face, op)
}

func (s *UIRenderSystem) drawButton(screen *ebiten.Image, bc *components.ButtonComponent) {
	r := bc.Bounds
	hover := utils.EaseOutCubic(utils.Clamp01(bc.HoverProgress))
	textColor := bc.TextColor
	scale := 1.0
	bold := false

	switch bc.Variant {
	case components.ButtonVariantDefault:
		// 悬停时背景略微变透明
		s.fillRect(screen, r, defaultButtonBackground, utils.Lerp(1, 0.9, hover))
		textColor = defaultButtonText
	case components.ButtonVariantGhost:
		if hover > 0 {
			s.fillRect(screen, r, ghostHoverBackground, 0.1*hover)
		}
	case components.ButtonVariantLink:
		scale = utils.Lerp(1, LinkHoverScale, hover)
		bold = bc.State == components.UIHovered || bc.State == components.UIClicked
	}

	face, ok := s.face(bc.FontSize, bold)
	if !ok {
		return
	}
	w, h := text.Measure(bc.Label, face, 0)
	cx, cy := r.Center()

	if bc.Variant == components.ButtonVariantUnderline && hover > 0 {
		y := cy + h/2
		s.batch.Reset()
		s.batch.AddLine(cx-w/2, y, cx+w/2, y, 1, render.ColorFromRGBA(textColor, hover))
		s.batch.Flush(screen)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(0, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(textColor)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, bc.Label, face, op)
}

func (s *UIRenderSystem) fillRect(screen *ebiten.Image, r components.Rect, clr color.RGBA, opacity float64) {
	s.batch.Reset()
	s.batch.AddRect(r.X, r.Y, r.Width, r.Height, render.ColorFromRGBA(clr, opacity))
	s.batch.Flush(screen)
}
