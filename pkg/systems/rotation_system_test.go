package systems

import (
	"math"
	"testing"

	"github.com/web3events/landing/pkg/components"
	"github.com/web3events/landing/pkg/ecs"
)

func TestRotationSystem_AccumulatesAngle(t *testing.T) {
	em := ecs.NewEntityManager()
	g := createTestGlobe(em, 10, 0.1)

	rs := NewRotationSystem(em)
	rs.Refresh()

	// 60 帧，每帧 1/60 秒 → 1 秒 → 0.1 弧度
	for i := 0; i < 60; i++ {
		rs.Update(1.0 / 60.0)
	}

	for _, id := range []ecs.EntityID{g.sphere, g.cloud} {
		tc, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if math.Abs(tc.RotationY-0.1) > 1e-9 {
			t.Errorf("entity %d: RotationY = %v, want 0.1", id, tc.RotationY)
		}
	}

	// 分组本身没有 Rotator，不旋转
	gt, _ := ecs.GetComponent[*components.TransformComponent](em, g.group)
	if gt.RotationY != 0 {
		t.Errorf("group RotationY = %v, want 0", gt.RotationY)
	}
}

func TestRotationSystem_MonotonicWithVariableFrames(t *testing.T) {
	em := ecs.NewEntityManager()
	g := createTestGlobe(em, 1, 0.1)

	rs := NewRotationSystem(em)
	rs.Refresh()

	last := 0.0
	total := 0.0
	for _, dt := range []float64{0.016, 0.033, 0.001, 0.1, 0.05} {
		rs.Update(dt)
		total += dt
		tc, _ := ecs.GetComponent[*components.TransformComponent](em, g.cloud)
		if tc.RotationY < last {
			t.Fatalf("RotationY decreased: %v -> %v", last, tc.RotationY)
		}
		last = tc.RotationY
	}

	if math.Abs(last-0.1*total) > 1e-12 {
		t.Errorf("RotationY = %v, want %v", last, 0.1*total)
	}
}

func TestRotationSystem_IgnoresNonPositiveDelta(t *testing.T) {
	em := ecs.NewEntityManager()
	g := createTestGlobe(em, 1, 0.1)

	rs := NewRotationSystem(em)
	rs.Refresh()
	rs.Update(0)
	rs.Update(-1)

	tc, _ := ecs.GetComponent[*components.TransformComponent](em, g.sphere)
	if tc.RotationY != 0 {
		t.Errorf("RotationY = %v after non-positive deltas, want 0", tc.RotationY)
	}
}
