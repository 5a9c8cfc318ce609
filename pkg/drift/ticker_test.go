package drift

import "testing"

func TestTicker_FiresOncePerInterval(t *testing.T) {
	count := 0
	tk := StartTicker(3.0, func() { count++ })

	for i := 0; i < 18; i++ {
		tk.Advance(0.5)
	}

	if count != 3 {
		t.Errorf("fired %d times in 9s, want 3", count)
	}
	if tk.Fired() != 3 {
		t.Errorf("Fired() = %d, want 3", tk.Fired())
	}
}

// 游戏循环的实际步长：第 180、360、540 帧各触发一次
func TestTicker_FrameStepFiresOnTime(t *testing.T) {
	var frames []int
	frame := 0
	tk := StartTicker(3.0, func() { frames = append(frames, frame) })

	for frame = 1; frame <= 540; frame++ {
		tk.Advance(1.0 / 60.0)
	}

	want := []int{180, 360, 540}
	if len(frames) != len(want) {
		t.Fatalf("ticks at frames %v, want %v", frames, want)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("tick %d at frame %d, want %d", i, frames[i], want[i])
		}
	}
}

// 1/30 步长下累计误差方向相反，同样不能提前或推迟
func TestTicker_ThirtyFPSFiresOnTime(t *testing.T) {
	var frames []int
	frame := 0
	tk := StartTicker(3.0, func() { frames = append(frames, frame) })

	for frame = 1; frame <= 270; frame++ {
		tk.Advance(1.0 / 30.0)
	}

	want := []int{90, 180, 270}
	if len(frames) != len(want) {
		t.Fatalf("ticks at frames %v, want %v", frames, want)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("tick %d at frame %d, want %d", i, frames[i], want[i])
		}
	}
}

func TestTicker_LargeStepCatchesUp(t *testing.T) {
	count := 0
	tk := StartTicker(1.0, func() { count++ })

	tk.Advance(3.5)
	if count != 3 {
		t.Errorf("fired %d times after a 3.5s step, want 3", count)
	}

	// 剩余的 0.5 秒保留到下一次
	tk.Advance(0.5)
	if count != 4 {
		t.Errorf("fired %d times after remainder completed, want 4", count)
	}
}

func TestTicker_StopBeforeFirstTick(t *testing.T) {
	count := 0
	tk := StartTicker(3.0, func() { count++ })

	tk.Advance(2.9)
	tk.Stop()
	tk.Advance(10)

	if count != 0 {
		t.Errorf("fired %d times after Stop, want 0", count)
	}
	if tk.Active() {
		t.Error("Active() should be false after Stop")
	}
}

func TestTicker_StopInsideCallback(t *testing.T) {
	count := 0
	var tk *Ticker
	tk = StartTicker(1.0, func() {
		count++
		tk.Stop()
	})

	// 一次跨过 5 个间隔，但回调中已经停止
	tk.Advance(5)

	if count != 1 {
		t.Errorf("fired %d times, want 1 (stopped inside callback)", count)
	}
}

func TestTicker_StopIsIdempotent(t *testing.T) {
	tk := StartTicker(1.0, func() {})
	tk.Stop()
	tk.Stop()

	var nilTicker *Ticker
	nilTicker.Stop()
	nilTicker.Advance(1)
	if nilTicker.Active() {
		t.Error("nil ticker should never be active")
	}
}

func TestTicker_InvalidArgumentsNeverFire(t *testing.T) {
	count := 0
	zero := StartTicker(0, func() { count++ })
	zero.Advance(100)

	noFn := StartTicker(1, nil)
	noFn.Advance(100)

	if count != 0 || zero.Active() || noFn.Active() {
		t.Errorf("invalid tickers should be inactive, fired %d times", count)
	}
}
