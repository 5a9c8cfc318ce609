package drift

// tickEpsilon 比较累计时间时的容差（秒）
// 1/60 这类步长无法用二进制精确表示，累加 180 次会略小于 3.0
const tickEpsilon = 1e-9

// Ticker 由游戏循环驱动的重复计时器
//
// 与 time.Ticker 不同，它不启动 goroutine：经过的时间只通过 Advance 累加，
// 因此回调总是在游戏循环所在的线程上执行。
type Ticker struct {
	interval float64 // 触发间隔（秒）
	elapsed  float64 // 自上次触发以来经过的时间（秒）
	fn       func()
	active   bool
	fired    int
}

// StartTicker 创建并启动计时器，返回的句柄必须在不再需要时调用 Stop
func StartTicker(interval float64, fn func()) *Ticker {
	return &Ticker{
		interval: interval,
		fn:       fn,
		active:   interval > 0 && fn != nil,
	}
}

// Advance 推进 dt 秒
// 每跨过一个完整间隔调用一次回调；dt 过大时可能连续触发多次。
// 回调中调用 Stop 会立即终止剩余的触发。
func (t *Ticker) Advance(dt float64) {
	if t == nil || !t.active || dt <= 0 {
		return
	}

	t.elapsed += dt
	for t.active && t.elapsed >= t.interval-tickEpsilon {
		t.elapsed -= t.interval
		if t.elapsed < 0 {
			t.elapsed = 0
		}
		t.fired++
		t.fn()
	}
}

// Stop 取消计时器，可重复调用
func (t *Ticker) Stop() {
	if t == nil {
		return
	}
	t.active = false
	t.elapsed = 0
}

// Active 返回计时器是否仍在运行
func (t *Ticker) Active() bool {
	return t != nil && t.active
}

// Fired 返回已触发次数
func (t *Ticker) Fired() int {
	if t == nil {
		return 0
	}
	return t.fired
}
