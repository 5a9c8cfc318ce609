package systems

import (
	"github.com/web3events/landing/pkg/components"
	"github.com/web3events/landing/pkg/ecs"
)

// RotationSystem 每帧累加实体绕竖直轴的转角
//
// 只修改 TransformComponent.RotationY，不分配内存、不做 I/O。
type RotationSystem struct {
	entityManager *ecs.EntityManager
	ids           []ecs.EntityID
}

// NewRotationSystem 创建旋转系统
func NewRotationSystem(em *ecs.EntityManager) *RotationSystem {
	return &RotationSystem{entityManager: em}
}

// Refresh 重新收集拥有 Transform + Rotator 的实体
// 场景创建或删除实体后调用；Update 不再每帧查询
func (s *RotationSystem) Refresh() {
	s.ids = ecs.GetEntitiesWith2[*components.TransformComponent, *components.RotatorComponent](s.entityManager)
}

// Update 以 deltaTime（秒）推进旋转
func (s *RotationSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	for _, id := range s.ids {
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}
		rotator, ok := ecs.GetComponent[*components.RotatorComponent](s.entityManager, id)
		if !ok {
			continue
		}
		transform.RotationY += rotator.AngularSpeed * deltaTime
	}
}
