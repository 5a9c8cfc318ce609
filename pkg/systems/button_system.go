package systems

import (
	"github.com/web3events/landing/pkg/components"
	"github.com/web3events/landing/pkg/ecs"
	"github.com/web3events/landing/pkg/utils"
)

// HoverTransitionSeconds 悬停过渡时长
const HoverTransitionSeconds = 0.15

// PointerReader 返回当前帧的指针状态
// 生产环境使用 utils.ReadPointer，测试中注入假数据
type PointerReader func() utils.PointerState

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered，推进 HoverProgress）
//   - 检测释放（按下和释放都在按钮内时触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//
// 注意：光标形状由调用者（LandingScene）根据 Hovering 统一管理
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerReader
	hovering      bool
	wasPressed    bool // 上一帧的按下状态，用于检测按下瞬间
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, pointer PointerReader) *ButtonSystem {
	if pointer == nil {
		pointer = utils.ReadPointer
	}
	return &ButtonSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// Hovering 上一次 Update 时是否有可用按钮处于悬停状态
func (s *ButtonSystem) Hovering() bool {
	return s.hovering
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	p := s.pointer()
	px, py := float64(p.X), float64(p.Y)
	rate := 1 / HoverTransitionSeconds
	justPressed := p.Pressed && !s.wasPressed
	s.wasPressed = p.Pressed
	s.hovering = false

	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.Armed = false
			button.State = components.UIDisabled
			button.HoverProgress = utils.StepToward(button.HoverProgress, 0, rate, deltaTime)
			continue
		}

		isHovered := p.Present && button.Bounds.Contains(px, py)
		if justPressed {
			button.Armed = isHovered
		}
		released := p.JustReleased && button.Armed
		if !p.Pressed {
			button.Armed = false
		}

		target := 0.0
		if isHovered {
			s.hovering = true
			target = 1
			switch {
			case p.Pressed:
				button.State = components.UIClicked
			case released:
				// 释放瞬间触发回调
				if button.OnClick != nil {
					button.OnClick()
				}
				button.State = components.UIHovered
			default:
				button.State = components.UIHovered
			}
		} else {
			button.State = components.UINormal
		}

		button.HoverProgress = utils.StepToward(button.HoverProgress, target, rate, deltaTime)
	}
}
