package components

import (
	"image/color"

	"github.com/web3events/landing/pkg/drift"
	"github.com/web3events/landing/pkg/pointcloud"
)

// PointCloudComponent 点云渲染数据
// Cloud 在创建后不再修改
type PointCloudComponent struct {
	Cloud pointcloud.PointCloud
	// Size 点的世界尺寸，按距离衰减后换算为像素
	Size float64
}

// WireSphereComponent 线框球
type WireSphereComponent struct {
	Radius         float64
	WidthSegments  int
	HeightSegments int
	Color          color.RGBA
}

// DriftComponent 由漂移动画器驱动位置的分组
type DriftComponent struct {
	Animator *drift.Animator
}
