package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制过渡动画的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于按钮悬停放大）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// StepToward 以 rate（每秒）的速度将 current 向 target 推进 dt 秒，不越过 target
func StepToward(current, target, rate, dt float64) float64 {
	delta := rate * dt
	if current < target {
		return math.Min(current+delta, target)
	}
	return math.Max(current-delta, target)
}
