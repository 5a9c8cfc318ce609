package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 内置字体名称
const (
	FontRegular = "go-regular"
	FontBold    = "go-bold"
)

// ResourceManager is responsible for centralized management of UI resources.
// It parses font sources once and caches text faces per (font, size), so that
// the per-frame render path never allocates faces.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
type ResourceManager struct {
	sources       map[string]*text.GoTextFaceSource // font name -> parsed source
	fontFaceCache map[string]*text.GoTextFace       // "name:size" -> face
}

// NewResourceManager creates a ResourceManager with the built-in Go fonts registered.
func NewResourceManager() (*ResourceManager, error) {
	rm := &ResourceManager{
		sources:       make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
	if err := rm.RegisterFont(FontRegular, goregular.TTF); err != nil {
		return nil, err
	}
	if err := rm.RegisterFont(FontBold, gobold.TTF); err != nil {
		return nil, err
	}
	return rm, nil
}

// RegisterFont parses TrueType/OpenType data and registers it under name.
// Registering an existing name replaces the source and drops its cached faces.
func (rm *ResourceManager) RegisterFont(name string, data []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create font source for %s: %w", name, err)
	}
	if _, exists := rm.sources[name]; exists {
		for key, face := range rm.fontFaceCache {
			if face.Source == rm.sources[name] {
				delete(rm.fontFaceCache, key)
			}
		}
	}
	rm.sources[name] = source
	return nil
}

// LoadFont returns a cached face of the named font at the given pixel size.
func (rm *ResourceManager) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := rm.sources[name]
	if !ok {
		return nil, fmt.Errorf("font %q not registered", name)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// Face implements systems.FontProvider using the built-in fonts.
func (rm *ResourceManager) Face(size float64, bold bool) *text.GoTextFace {
	name := FontRegular
	if bold {
		name = FontBold
	}
	// 内置字体在构造时已注册，这里不会失败
	face, _ := rm.LoadFont(name, size)
	return face
}
