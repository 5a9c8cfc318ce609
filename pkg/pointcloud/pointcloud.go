// Package pointcloud 生成地球背景使用的单位球面点云
//
// 点的位置在球面上均匀分布（极角使用 acos(2v-1) 校正，避免在两极聚集），
// 每个点独立分配一个随机色相的颜色，与位置无关。
package pointcloud

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/web3events/landing/pkg/utils"
)

// Source 随机数来源
// Float64 返回 [0, 1) 区间内的均匀随机数，*rand.Rand 满足此接口
type Source interface {
	Float64() float64
}

// Options 点云颜色参数
type Options struct {
	// Saturation HSL 饱和度 ∈ [0, 1]
	Saturation float64
	// Lightness HSL 亮度 ∈ [0, 1]
	Lightness float64
}

// DefaultOptions 返回默认颜色参数（饱和度 0.7，亮度 0.5）
func DefaultOptions() Options {
	return Options{
		Saturation: 0.7,
		Lightness:  0.5,
	}
}

// Point 单个点：单位球面上的位置 + RGB 颜色
type Point struct {
	Position utils.Vec3
	Color    utils.RGB
}

// PointCloud 有序点集以及供渲染层使用的扁平缓冲区
//
// 不变量：len(Positions) == len(Colors) == 3 * len(Points)
type PointCloud struct {
	Points    []Point
	Positions []float32 // x0, y0, z0, x1, y1, z1, ...
	Colors    []float32 // r0, g0, b0, r1, g1, b1, ...
}

// Len 返回点的数量
func (pc PointCloud) Len() int {
	return len(pc.Points)
}

// Generate 生成 count 个位于单位球面上的随机点
//
// count <= 0 时返回空点云。
// 结果只依赖 count、opts 和 rng 的输出序列，没有其他副作用。
func Generate(count int, rng Source, opts Options) PointCloud {
	if count <= 0 {
		return PointCloud{
			Points:    []Point{},
			Positions: []float32{},
			Colors:    []float32{},
		}
	}

	pc := PointCloud{
		Points:    make([]Point, count),
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
	}

	for i := 0; i < count; i++ {
		pos := samplePosition(rng.Float64(), rng.Float64())
		col := sampleColor(rng.Float64(), opts)

		pc.Points[i] = Point{Position: pos, Color: col}

		pc.Positions[i*3] = float32(pos.X)
		pc.Positions[i*3+1] = float32(pos.Y)
		pc.Positions[i*3+2] = float32(pos.Z)

		pc.Colors[i*3] = float32(col.R)
		pc.Colors[i*3+1] = float32(col.G)
		pc.Colors[i*3+2] = float32(col.B)
	}

	return pc
}

// samplePosition 将两个 [0,1) 均匀随机数映射到单位球面
//
//	theta = u * 2π        方位角
//	phi   = acos(2v - 1)  极角
func samplePosition(u, v float64) utils.Vec3 {
	theta := u * 2 * math.Pi
	phi := math.Acos(2*v - 1)
	sinPhi := math.Sin(phi)
	return utils.Vec3{
		X: sinPhi * math.Cos(theta),
		Y: sinPhi * math.Sin(theta),
		Z: math.Cos(phi),
	}
}

// sampleColor 以固定饱和度和亮度，将 hue ∈ [0,1) 转换为 RGB
func sampleColor(hue float64, opts Options) utils.RGB {
	c := colorful.Hsl(hue*360, opts.Saturation, opts.Lightness).Clamped()
	return utils.RGB{R: c.R, G: c.G, B: c.B}
}

// Validate 检查点云的结构不变量
//
// 检查项：
//   - 两个缓冲区长度都等于 3 * 点数
//   - 每个位置向量的长度与 1 的偏差不超过 tolerance
//   - 每个颜色通道 ∈ [0, 1]
func (pc PointCloud) Validate(tolerance float64) error {
	n := len(pc.Points)
	if len(pc.Positions) != n*3 {
		return fmt.Errorf("positions buffer length %d, want %d", len(pc.Positions), n*3)
	}
	if len(pc.Colors) != n*3 {
		return fmt.Errorf("colors buffer length %d, want %d", len(pc.Colors), n*3)
	}

	for i, p := range pc.Points {
		if norm := p.Position.Length(); math.Abs(norm-1) > tolerance {
			return fmt.Errorf("point %d: norm %.9f is off the unit sphere", i, norm)
		}
		for _, ch := range [3]float64{p.Color.R, p.Color.G, p.Color.B} {
			if ch < 0 || ch > 1 {
				return fmt.Errorf("point %d: color channel %.6f out of [0, 1]", i, ch)
			}
		}
	}
	return nil
}
