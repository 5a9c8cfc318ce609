package render

import (
	"math"
	"testing"
)

func TestWireSphere_VerticesOnSphere(t *testing.T) {
	ws := NewWireSphere(10, 65, 72)

	if got, want := len(ws.Vertices()), 66*73; got != want {
		t.Fatalf("vertex count = %d, want %d", got, want)
	}
	for i, v := range ws.Vertices() {
		if math.Abs(v.Length()-10) > 1e-9 {
			t.Fatalf("vertex %d has radius %v, want 10", i, v.Length())
		}
	}

	// 第一行是北极，最后一行是南极
	if v := ws.Vertices()[0]; math.Abs(v.Y-10) > 1e-9 {
		t.Errorf("first vertex = %v, want north pole", v)
	}
	if v := ws.Vertices()[len(ws.Vertices())-1]; math.Abs(v.Y+10) > 1e-9 {
		t.Errorf("last vertex = %v, want south pole", v)
	}
}

func TestWireSphere_EdgeCount(t *testing.T) {
	ws := NewWireSphere(1, 8, 4)

	// 纬线 (4-1)*8 + 经线 8*4
	if got, want := len(ws.Edges()), 3*8+8*4; got != want {
		t.Errorf("edge count = %d, want %d", got, want)
	}
	for _, e := range ws.Edges() {
		if e.A < 0 || e.B >= len(ws.Vertices()) || e.A == e.B {
			t.Fatalf("invalid edge %+v", e)
		}
	}
}

func TestWireSphere_ClampsSegments(t *testing.T) {
	ws := NewWireSphere(1, 1, 1)
	if ws.WidthSegments != 3 || ws.HeightSegments != 2 {
		t.Errorf("segments = %dx%d, want clamped to 3x2", ws.WidthSegments, ws.HeightSegments)
	}
}
