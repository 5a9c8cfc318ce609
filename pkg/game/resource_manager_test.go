package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

func TestResourceManager_BuiltinFonts(t *testing.T) {
	rm, err := NewResourceManager()
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}

	regular := rm.Face(16, false)
	bold := rm.Face(16, true)
	if regular == nil || bold == nil {
		t.Fatal("Face() returned nil for built-in font")
	}
	if regular.Source == bold.Source {
		t.Error("regular and bold faces share a source")
	}
	if regular.Size != 16 {
		t.Errorf("Size = %v, want 16", regular.Size)
	}

	// 同一尺寸返回缓存的 face
	if rm.Face(16, false) != regular {
		t.Error("Face() should return the cached face")
	}
	if rm.Face(20, false) == regular {
		t.Error("different sizes must not share a face")
	}

	w, h := text.Measure("Discover Web3 Events", regular, 0)
	if w <= 0 || h <= 0 {
		t.Errorf("Measure = %vx%v, want positive", w, h)
	}
}

func TestResourceManager_UnknownFont(t *testing.T) {
	rm, err := NewResourceManager()
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}
	if _, err := rm.LoadFont("missing", 12); err == nil {
		t.Error("expected error for unregistered font")
	}
}

func TestResourceManager_RegisterFont(t *testing.T) {
	rm, err := NewResourceManager()
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}

	if err := rm.RegisterFont("mono", gomono.TTF); err != nil {
		t.Fatalf("RegisterFont() error: %v", err)
	}
	face, err := rm.LoadFont("mono", 14)
	if err != nil || face == nil {
		t.Fatalf("LoadFont(mono) = %v, %v", face, err)
	}

	if err := rm.RegisterFont("broken", []byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}
