// Package drift 驱动地球整体位置的随机漂移动画
//
// 计时器每隔固定间隔在有界立方体内采样一个新的目标偏移，交给三轴弹簧插值；
// 渲染层每帧通过 Current 拉取插值后的位置。
package drift

import (
	"fmt"

	"github.com/web3events/landing/pkg/utils"
)

// Source 随机数来源，Float64 返回 [0, 1) 内的均匀随机数
type Source interface {
	Float64() float64
}

// Config 漂移动画配置
type Config struct {
	// Interval 目标刷新间隔（秒）
	Interval float64 `yaml:"interval"`
	// Bound 目标每个分量的取值范围 [-Bound, Bound)
	Bound float64 `yaml:"bound"`
	// LockZ 为 true 时目标的 z 分量固定为 0
	LockZ bool `yaml:"lockZ"`
	// Spring 弹簧参数
	Spring SpringParams `yaml:"spring"`
}

// DefaultConfig 返回默认配置：3 秒间隔，边界 1，质量/张力/摩擦 = 1/280/60
func DefaultConfig() Config {
	return Config{
		Interval: 3.0,
		Bound:    1.0,
		LockZ:    false,
		Spring:   DefaultSpringParams(),
	}
}

// Validate 验证配置有效性
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("drift interval must be positive, got %.3f", c.Interval)
	}
	if c.Bound < 0 {
		return fmt.Errorf("drift bound must not be negative, got %.3f", c.Bound)
	}
	if err := c.Spring.Validate(); err != nil {
		return fmt.Errorf("invalid drift spring: %w", err)
	}
	return nil
}

// SampleTarget 采样一个漂移目标
// 每个分量为 (rand - 0.5) * 2 * bound，即 [-bound, bound)
func SampleTarget(rng Source, bound float64, lockZ bool) utils.Vec3 {
	x := (rng.Float64() - 0.5) * 2 * bound
	y := (rng.Float64() - 0.5) * 2 * bound
	z := 0.0
	if !lockZ {
		z = (rng.Float64() - 0.5) * 2 * bound
	}
	return utils.Vec3{X: x, Y: y, Z: z}
}

// Animator 漂移动画器
//
// 生命周期：Start 返回句柄，句柄的 Stop 取消计时器。
// 同一时刻最多只有一个活动句柄。
type Animator struct {
	cfg    Config
	rng    Source
	spring *Spring3
	handle *Handle

	// OnTarget 每次提交新目标后调用（可为 nil）
	OnTarget func(target utils.Vec3)
}

// Handle 一次 Start 对应的计时器句柄
type Handle struct {
	ticker *Ticker
}

// Stop 取消计时器；返回后不会再有目标更新。可重复调用
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.ticker.Stop()
}

// Active 返回句柄是否仍在运行
func (h *Handle) Active() bool {
	return h != nil && h.ticker.Active()
}

// NewAnimator 创建漂移动画器，初始位置为原点
func NewAnimator(cfg Config, rng Source) *Animator {
	return &Animator{
		cfg:    cfg,
		rng:    rng,
		spring: NewSpring3(cfg.Spring, utils.Vec3{}),
	}
}

// Start 启动计时器
// 如果已有活动句柄，先将其停止。
func (a *Animator) Start() *Handle {
	if a.handle != nil {
		a.handle.Stop()
	}
	a.handle = &Handle{ticker: StartTicker(a.cfg.Interval, a.tick)}
	return a.handle
}

// Stop 停止当前句柄（如果有）
func (a *Animator) Stop() {
	if a.handle != nil {
		a.handle.Stop()
		a.handle = nil
	}
}

// Running 返回是否有活动的计时器
func (a *Animator) Running() bool {
	return a.handle.Active()
}

// Update 每帧调用：推进计时器并积分弹簧
// 停止后弹簧仍会继续向最后一个目标收敛。
func (a *Animator) Update(dt float64) {
	if a.handle != nil {
		a.handle.ticker.Advance(dt)
	}
	a.spring.Step(dt)
}

// Current 当前插值后的位置
func (a *Animator) Current() utils.Vec3 {
	return a.spring.Current()
}

// Target 最近一次提交的目标
func (a *Animator) Target() utils.Vec3 {
	return a.spring.Target()
}

func (a *Animator) tick() {
	target := SampleTarget(a.rng, a.cfg.Bound, a.cfg.LockZ)
	a.spring.SetTarget(target)
	if a.OnTarget != nil {
		a.OnTarget(target)
	}
}
