package systems

import (
	"github.com/web3events/landing/pkg/components"
	"github.com/web3events/landing/pkg/ecs"
)

// DriftSystem 推进漂移动画器，并把插值位置写回分组实体
type DriftSystem struct {
	entityManager *ecs.EntityManager
	ids           []ecs.EntityID
}

// NewDriftSystem 创建漂移系统
func NewDriftSystem(em *ecs.EntityManager) *DriftSystem {
	return &DriftSystem{entityManager: em}
}

// Refresh 重新收集拥有 Drift + Transform 的实体
func (s *DriftSystem) Refresh() {
	s.ids = ecs.GetEntitiesWith2[*components.DriftComponent, *components.TransformComponent](s.entityManager)
}

// Update 推进 deltaTime 秒
func (s *DriftSystem) Update(deltaTime float64) {
	for _, id := range s.ids {
		dc, ok := ecs.GetComponent[*components.DriftComponent](s.entityManager, id)
		if !ok || dc.Animator == nil {
			continue
		}
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}
		dc.Animator.Update(deltaTime)
		transform.Position = dc.Animator.Current()
	}
}
