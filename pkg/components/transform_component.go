package components

import (
	"github.com/web3events/landing/pkg/ecs"
	"github.com/web3events/landing/pkg/utils"
)

// TransformComponent 实体在 3D 场景中的变换
//
// Position 相对于父分组（GroupComponent 指向的实体）；没有父分组时即世界坐标。
// RotationY 为绕竖直轴的累计转角（弧度），只增不减。
type TransformComponent struct {
	Position  utils.Vec3
	RotationY float64
}

// GroupComponent 将实体挂到一个父分组实体上
// 父分组的 TransformComponent.Position 叠加到子实体上（只支持一层）
type GroupComponent struct {
	Parent ecs.EntityID
}

// RotatorComponent 让实体以固定角速度绕竖直轴旋转
type RotatorComponent struct {
	// AngularSpeed 角速度（弧度/秒）
	AngularSpeed float64
}
