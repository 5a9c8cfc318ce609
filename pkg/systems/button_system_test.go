package systems

import (
	"testing"

	"github.com/web3events/landing/pkg/components"
	"github.com/web3events/landing/pkg/ecs"
	"github.com/web3events/landing/pkg/utils"
)

// fakePointer 可控的指针输入
type fakePointer struct {
	state utils.PointerState
}

func (f *fakePointer) read() utils.PointerState {
	s := f.state
	// JustReleased 只持续一帧
	f.state.JustReleased = false
	return s
}

func (f *fakePointer) moveTo(x, y int) {
	f.state.X, f.state.Y = x, y
	f.state.Present = true
}

func (f *fakePointer) press()   { f.state.Pressed = true }
func (f *fakePointer) release() { f.state.Pressed = false; f.state.JustReleased = true }

func createTestButton(em *ecs.EntityManager, enabled bool, clicks *int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ButtonComponent{
		Label:   "Launch App",
		URL:     "https://example.com",
		Variant: components.ButtonVariantDefault,
		Bounds:  components.Rect{X: 100, Y: 100, Width: 120, Height: 40},
		Enabled: enabled,
		OnClick: func() { *clicks++ },
	})
	return id
}

func TestButtonSystem_ClickOnRelease(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := createTestButton(em, true, &clicks)

	ptr := &fakePointer{}
	bs := NewButtonSystem(em, ptr.read)

	ptr.moveTo(150, 120)
	bs.Update(1.0 / 60.0)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	if button.State != components.UIHovered {
		t.Errorf("State = %v, want hovered", button.State)
	}
	if !bs.Hovering() {
		t.Error("Hovering() should be true over an enabled button")
	}

	ptr.press()
	bs.Update(1.0 / 60.0)
	if button.State != components.UIClicked {
		t.Errorf("State = %v, want clicked while pressed", button.State)
	}
	if clicks != 0 {
		t.Fatalf("OnClick fired on press, want on release")
	}

	ptr.release()
	bs.Update(1.0 / 60.0)
	if clicks != 1 {
		t.Fatalf("clicks = %d after release, want 1", clicks)
	}

	// 后续帧不会重复触发
	bs.Update(1.0 / 60.0)
	bs.Update(1.0 / 60.0)
	if clicks != 1 {
		t.Errorf("clicks = %d, OnClick must fire once per release", clicks)
	}
}

func TestButtonSystem_ReleaseOutsideDoesNothing(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := createTestButton(em, true, &clicks)

	ptr := &fakePointer{}
	bs := NewButtonSystem(em, ptr.read)

	ptr.moveTo(10, 10)
	ptr.press()
	bs.Update(1.0 / 60.0)
	ptr.release()
	bs.Update(1.0 / 60.0)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 for a release outside the button", clicks)
	}
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	if button.State != components.UINormal {
		t.Errorf("State = %v, want normal", button.State)
	}
	if bs.Hovering() {
		t.Error("Hovering() should be false")
	}
}

func TestButtonSystem_DisabledNeverFires(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := createTestButton(em, false, &clicks)

	ptr := &fakePointer{}
	bs := NewButtonSystem(em, ptr.read)

	ptr.moveTo(150, 120)
	ptr.press()
	bs.Update(1.0 / 60.0)
	ptr.release()
	bs.Update(1.0 / 60.0)

	if clicks != 0 {
		t.Errorf("disabled button fired %d times", clicks)
	}
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	if button.State != components.UIDisabled {
		t.Errorf("State = %v, want disabled", button.State)
	}
	if bs.Hovering() {
		t.Error("disabled button must not report hovering")
	}
}

func TestButtonSystem_HoverProgressEases(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := createTestButton(em, true, &clicks)

	ptr := &fakePointer{}
	bs := NewButtonSystem(em, ptr.read)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)

	ptr.moveTo(150, 120)
	bs.Update(0.05)
	if button.HoverProgress <= 0 || button.HoverProgress >= 1 {
		t.Errorf("HoverProgress = %v after 0.05s, want in (0,1)", button.HoverProgress)
	}

	// 超过过渡时长后到达 1
	for i := 0; i < 10; i++ {
		bs.Update(0.05)
	}
	if button.HoverProgress != 1 {
		t.Errorf("HoverProgress = %v, want 1", button.HoverProgress)
	}

	// 移开后回到 0
	ptr.moveTo(0, 0)
	for i := 0; i < 10; i++ {
		bs.Update(0.05)
	}
	if button.HoverProgress != 0 {
		t.Errorf("HoverProgress = %v after leaving, want 0", button.HoverProgress)
	}
}

func TestButtonSystem_PressOutsideReleaseInsideDoesNothing(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := createTestButton(em, true, &clicks)

	ptr := &fakePointer{}
	bs := NewButtonSystem(em, ptr.read)

	// 在按钮外按下，拖进按钮后释放
	ptr.moveTo(10, 10)
	ptr.press()
	bs.Update(1.0 / 60.0)
	ptr.moveTo(150, 120)
	bs.Update(1.0 / 60.0)
	ptr.release()
	bs.Update(1.0 / 60.0)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 when the press started outside", clicks)
	}
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	if button.Armed {
		t.Error("button should not stay armed after release")
	}

	// 下一次完整的点击正常触发
	ptr.press()
	bs.Update(1.0 / 60.0)
	ptr.release()
	bs.Update(1.0 / 60.0)
	if clicks != 1 {
		t.Errorf("clicks = %d after a full click inside, want 1", clicks)
	}
}

func TestButtonSystem_DragOutAndBackStillClicks(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	createTestButton(em, true, &clicks)

	ptr := &fakePointer{}
	bs := NewButtonSystem(em, ptr.read)

	ptr.moveTo(150, 120)
	ptr.press()
	bs.Update(1.0 / 60.0)
	ptr.moveTo(10, 10)
	bs.Update(1.0 / 60.0)
	ptr.moveTo(150, 120)
	bs.Update(1.0 / 60.0)
	ptr.release()
	bs.Update(1.0 / 60.0)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1 for a press and release inside", clicks)
	}
}
