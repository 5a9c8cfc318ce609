package render

import (
	"math"

	"github.com/web3events/landing/pkg/utils"
)

// Edge 线框中的一条边（顶点索引）
type Edge struct {
	A, B int
}

// WireSphere UV 球的线框几何
//
// 顶点布局为 (HeightSegments+1) 行 × (WidthSegments+1) 列，
// 第 iy 行、第 ix 列的顶点为：
//
//	u = ix / WidthSegments, v = iy / HeightSegments
//	x = -r·cos(2πu)·sin(πv)
//	y =  r·cos(πv)
//	z =  r·sin(2πu)·sin(πv)
//
// 边由纬线（同一行相邻列）和经线（同一列相邻行）组成。
// 两极的纬线退化为点，不生成。
type WireSphere struct {
	Radius         float64
	WidthSegments  int
	HeightSegments int

	vertices []utils.Vec3
	edges    []Edge
}

// NewWireSphere 生成线框几何
func NewWireSphere(radius float64, widthSegments, heightSegments int) *WireSphere {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	ws := &WireSphere{
		Radius:         radius,
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
	}

	cols := widthSegments + 1
	ws.vertices = make([]utils.Vec3, 0, cols*(heightSegments+1))
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		sinTheta, cosTheta := math.Sin(v*math.Pi), math.Cos(v*math.Pi)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			sinPhi, cosPhi := math.Sin(u*2*math.Pi), math.Cos(u*2*math.Pi)
			ws.vertices = append(ws.vertices, utils.Vec3{
				X: -radius * cosPhi * sinTheta,
				Y: radius * cosTheta,
				Z: radius * sinPhi * sinTheta,
			})
		}
	}

	index := func(ix, iy int) int { return iy*cols + ix }

	// 纬线
	for iy := 1; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			ws.edges = append(ws.edges, Edge{index(ix, iy), index(ix+1, iy)})
		}
	}
	// 经线（ix == widthSegments 的列与 ix == 0 重合，不重复生成）
	for ix := 0; ix < widthSegments; ix++ {
		for iy := 0; iy < heightSegments; iy++ {
			ws.edges = append(ws.edges, Edge{index(ix, iy), index(ix, iy+1)})
		}
	}

	return ws
}

// Vertices 返回局部坐标系下的顶点（只读）
func (ws *WireSphere) Vertices() []utils.Vec3 {
	return ws.vertices
}

// Edges 返回所有边（只读）
func (ws *WireSphere) Edges() []Edge {
	return ws.edges
}
