package render

import (
	"image/color"
	"testing"
)

func TestBatch_AddAndReset(t *testing.T) {
	b := NewBatch(16)
	white := Color{1, 1, 1, 1}

	b.AddRect(0, 0, 10, 10, white)
	b.AddPoint(5, 5, 2, white)
	b.AddLine(0, 0, 10, 0, 1, white)

	if b.QuadCount() != 3 {
		t.Errorf("QuadCount = %d, want 3", b.QuadCount())
	}
	if b.VertexCount() != 12 {
		t.Errorf("VertexCount = %d, want 12", b.VertexCount())
	}

	b.Reset()
	if b.VertexCount() != 0 || b.ChunkCount() != 0 {
		t.Errorf("after Reset: %d vertices, %d chunks", b.VertexCount(), b.ChunkCount())
	}
}

func TestBatch_ZeroLengthLineIsSkipped(t *testing.T) {
	b := NewBatch(4)
	b.AddLine(3, 3, 3, 3, 1, Color{1, 1, 1, 1})
	if b.QuadCount() != 0 {
		t.Errorf("zero-length line produced %d quads", b.QuadCount())
	}
}

func TestBatch_SplitsIntoChunks(t *testing.T) {
	b := NewBatch(100)
	quads := MaxVerticesPerChunk/4 + 10

	for i := 0; i < quads; i++ {
		b.AddPoint(float64(i), 0, 1, Color{1, 0, 0, 1})
	}

	if b.QuadCount() != quads {
		t.Errorf("QuadCount = %d, want %d", b.QuadCount(), quads)
	}
	if b.ChunkCount() != 2 {
		t.Errorf("ChunkCount = %d, want 2", b.ChunkCount())
	}

	// 每个分块内的索引都不超过该分块的顶点数
	for ci := 0; ci < b.ChunkCount(); ci++ {
		c := b.chunks[ci]
		for _, idx := range c.indices {
			if int(idx) >= len(c.vertices) {
				t.Fatalf("chunk %d: index %d out of %d vertices", ci, idx, len(c.vertices))
			}
		}
	}

	// Reset 后复用分块，不再增长
	b.Reset()
	for i := 0; i < quads; i++ {
		b.AddPoint(float64(i), 0, 1, Color{1, 0, 0, 1})
	}
	if len(b.chunks) != 2 {
		t.Errorf("chunks grew to %d after reuse, want 2", len(b.chunks))
	}
}

func TestBatch_LineWidth(t *testing.T) {
	b := NewBatch(1)
	b.AddLine(0, 0, 10, 0, 2, Color{1, 1, 1, 1})

	vs := b.chunks[0].vertices
	minY, maxY := vs[0].DstY, vs[0].DstY
	for _, v := range vs {
		if v.DstY < minY {
			minY = v.DstY
		}
		if v.DstY > maxY {
			maxY = v.DstY
		}
	}
	if maxY-minY != 2 {
		t.Errorf("horizontal line thickness = %v, want 2", maxY-minY)
	}
}

func TestColorFromRGBA(t *testing.T) {
	c := ColorFromRGBA(color.RGBA{R: 255, G: 0, B: 51, A: 255}, 0.3)
	if c.R != 1 || c.G != 0 || c.B != 0.2 {
		t.Errorf("ColorFromRGBA rgb = (%v, %v, %v)", c.R, c.G, c.B)
	}
	if d := c.A - 0.3; d > 1e-6 || d < -1e-6 {
		t.Errorf("ColorFromRGBA alpha = %v, want 0.3", c.A)
	}
}

func TestAddGradientStops(t *testing.T) {
	b := NewBatch(4)
	stops := []Color{{0, 0, 0, 1}, {0.5, 0, 0.5, 1}, {0.2, 0, 0.4, 1}}

	AddGradientStops(b, 100, 300, stops)
	if b.QuadCount() != 2 {
		t.Fatalf("3 stops should produce 2 bands, got %d", b.QuadCount())
	}

	vs := b.chunks[0].vertices
	// 第一段顶部为第一个站点颜色，第二段底部为最后一个站点颜色
	if vs[0].ColorR != 0 || vs[7].ColorR != 0.2 {
		t.Errorf("gradient colors: top %v bottom %v", vs[0].ColorR, vs[7].ColorR)
	}
	if vs[2].DstY != 150 {
		t.Errorf("first band bottom = %v, want 150", vs[2].DstY)
	}

	b.Reset()
	AddGradientStops(b, 100, 100, stops[:1])
	if b.QuadCount() != 1 {
		t.Errorf("single stop should fill one rect, got %d quads", b.QuadCount())
	}
}
