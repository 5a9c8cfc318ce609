package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/web3events/landing/pkg/ecs"
)

// countingFonts 记录字体请求
type countingFonts struct {
	calls int
	face  *text.GoTextFace
}

func (f *countingFonts) Face(size float64, bold bool) *text.GoTextFace {
	f.calls++
	return f.face
}

func TestUIRenderSystem_NilFontsSkipsText(t *testing.T) {
	s := NewUIRenderSystem(ecs.NewEntityManager(), nil)

	if face, ok := s.face(16, false); ok || face != nil {
		t.Errorf("face() = (%v, %v) without a FontProvider, want (nil, false)", face, ok)
	}
}

func TestUIRenderSystem_NilFaceSkipsText(t *testing.T) {
	fonts := &countingFonts{}
	s := NewUIRenderSystem(ecs.NewEntityManager(), fonts)

	if _, ok := s.face(16, true); ok {
		t.Error("face() should report false when the provider has no face")
	}
	if fonts.calls != 1 {
		t.Errorf("provider called %d times, want 1", fonts.calls)
	}
}
