// Package render 将地球场景投影到屏幕并批量绘制
//
// 相机固定朝向 -Z（与 three.js 默认相机一致），只支持平移。
// 所有几何都先累积到 Batch 中，最后通过 DrawTriangles 一次性提交。
package render

import (
	"math"

	"github.com/web3events/landing/pkg/utils"
)

// Camera 透视相机
type Camera struct {
	Position utils.Vec3
	// FOV 垂直视场角（度）
	FOV float64
	// Near 近裁剪面距离
	Near float64

	focal float64 // 1 / tan(fov/2)
}

// NewCamera 创建透视相机
func NewCamera(position utils.Vec3, fovDegrees, near float64) Camera {
	return Camera{
		Position: position,
		FOV:      fovDegrees,
		Near:     near,
		focal:    1 / math.Tan(fovDegrees*math.Pi/360),
	}
}

// toView 世界坐标 → 相机坐标（相机看向 -Z，返回的 depth 为正表示在相机前方）
func (c Camera) toView(p utils.Vec3) (x, y, depth float64) {
	rel := p.Sub(c.Position)
	return rel.X, rel.Y, -rel.Z
}

// viewToScreen 相机坐标 → 屏幕像素坐标
func (c Camera) viewToScreen(x, y, depth float64, width, height int) (float64, float64) {
	w, h := float64(width), float64(height)
	aspect := w / h
	ndcX := c.focal * x / depth / aspect
	ndcY := c.focal * y / depth
	return (ndcX + 1) / 2 * w, (1 - ndcY) / 2 * h
}

// Project 将世界坐标投影到屏幕
// 点位于近裁剪面之后时 ok 为 false
func (c Camera) Project(p utils.Vec3, width, height int) (sx, sy, depth float64, ok bool) {
	x, y, depth := c.toView(p)
	if depth < c.Near {
		return 0, 0, depth, false
	}
	sx, sy = c.viewToScreen(x, y, depth, width, height)
	return sx, sy, depth, true
}

// ProjectSegment 投影线段，跨越近裁剪面时裁剪到近裁剪面上
// 两端都在近裁剪面之后时 ok 为 false
func (c Camera) ProjectSegment(a, b utils.Vec3, width, height int) (x0, y0, x1, y1 float64, ok bool) {
	ax, ay, ad := c.toView(a)
	bx, by, bd := c.toView(b)

	if ad < c.Near && bd < c.Near {
		return 0, 0, 0, 0, false
	}

	// 将在近裁剪面之后的端点移动到近裁剪面上
	if ad < c.Near {
		t := (c.Near - ad) / (bd - ad)
		ax, ay, ad = ax+(bx-ax)*t, ay+(by-ay)*t, c.Near
	} else if bd < c.Near {
		t := (c.Near - bd) / (ad - bd)
		bx, by, bd = bx+(ax-bx)*t, by+(ay-by)*t, c.Near
	}

	x0, y0 = c.viewToScreen(ax, ay, ad, width, height)
	x1, y1 = c.viewToScreen(bx, by, bd, width, height)
	return x0, y0, x1, y1, true
}

// PointPixelSize 世界尺寸 size 的点在 depth 处的像素尺寸
// 与 three.js PointsMaterial 的 sizeAttenuation 相同：size * (height/2) / depth
func PointPixelSize(size, depth float64, height int) float64 {
	if depth <= 0 {
		return 0
	}
	return size * float64(height) / 2 / depth
}
