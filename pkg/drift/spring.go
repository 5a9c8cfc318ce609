package drift

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/web3events/landing/pkg/utils"
)

// SpringParams 弹簧物理参数（质量 / 张力 / 摩擦）
type SpringParams struct {
	Mass     float64 `yaml:"mass"`
	Tension  float64 `yaml:"tension"`
	Friction float64 `yaml:"friction"`
}

// DefaultSpringParams 返回默认弹簧参数：质量 1，张力 280，摩擦 60
func DefaultSpringParams() SpringParams {
	return SpringParams{Mass: 1, Tension: 280, Friction: 60}
}

// Validate 验证参数有效性
func (p SpringParams) Validate() error {
	if p.Mass <= 0 {
		return fmt.Errorf("spring mass must be positive, got %.3f", p.Mass)
	}
	if p.Tension <= 0 {
		return fmt.Errorf("spring tension must be positive, got %.3f", p.Tension)
	}
	if p.Friction < 0 {
		return fmt.Errorf("spring friction must not be negative, got %.3f", p.Friction)
	}
	return nil
}

// AngularFrequency 无阻尼角频率 ω = sqrt(k / m)
func (p SpringParams) AngularFrequency() float64 {
	return math.Sqrt(p.Tension / p.Mass)
}

// DampingRatio 阻尼比 ζ = c / (2·sqrt(k·m))
// ζ > 1 为过阻尼（默认参数约为 1.79，不会回弹）
func (p SpringParams) DampingRatio() float64 {
	return p.Friction / (2 * math.Sqrt(p.Tension*p.Mass))
}

// Spring3 三轴弹簧插值器
// 每个轴独立积分，共用同一组 harmonica 系数
type Spring3 struct {
	params SpringParams
	spring harmonica.Spring
	dt     float64 // 当前系数对应的时间步长

	pos    [3]float64
	vel    [3]float64
	target [3]float64
}

// NewSpring3 创建静止于 start 的弹簧
func NewSpring3(params SpringParams, start utils.Vec3) *Spring3 {
	s := &Spring3{params: params}
	s.pos = toArray(start)
	s.target = s.pos
	return s
}

// SetTarget 设置新的目标位置，速度保持连续
func (s *Spring3) SetTarget(target utils.Vec3) {
	s.target = toArray(target)
}

// Step 以 dt 秒推进弹簧
func (s *Spring3) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if dt != s.dt {
		s.spring = harmonica.NewSpring(dt, s.params.AngularFrequency(), s.params.DampingRatio())
		s.dt = dt
	}
	for i := range s.pos {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], s.target[i])
	}
}

// Current 当前插值位置
func (s *Spring3) Current() utils.Vec3 { return fromArray(s.pos) }

// Velocity 当前速度
func (s *Spring3) Velocity() utils.Vec3 { return fromArray(s.vel) }

// Target 当前目标位置
func (s *Spring3) Target() utils.Vec3 { return fromArray(s.target) }

// Settled 位置与目标的距离和速度都小于 eps 时返回 true
func (s *Spring3) Settled(eps float64) bool {
	return s.Current().Sub(s.Target()).Length() < eps && s.Velocity().Length() < eps
}

func toArray(v utils.Vec3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func fromArray(a [3]float64) utils.Vec3 { return utils.Vec3{X: a[0], Y: a[1], Z: a[2]} }
