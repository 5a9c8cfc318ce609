package utils

import "math"

// Vec3 三维向量（世界坐标 / 相机坐标）
type Vec3 struct {
	X, Y, Z float64
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul 标量乘法
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot 点积
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Length 向量长度
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// RotateY 绕 Y 轴（竖直轴）旋转 angle 弧度
// 与右手坐标系一致：正角度从 +Z 转向 +X
func (v Vec3) RotateY(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// RGB 线性颜色，每个通道 ∈ [0, 1]
type RGB struct {
	R, G, B float64
}
