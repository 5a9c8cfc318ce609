package systems

import (
	"image/color"
	"math/rand"

	"github.com/web3events/landing/pkg/components"
	"github.com/web3events/landing/pkg/drift"
	"github.com/web3events/landing/pkg/ecs"
	"github.com/web3events/landing/pkg/pointcloud"
)

// testGlobe 测试用的地球实体集合
type testGlobe struct {
	group  ecs.EntityID
	sphere ecs.EntityID
	cloud  ecs.EntityID
	anim   *drift.Animator
}

// createTestGlobe 创建与落地页相同结构的实体：分组 + 线框球 + 点云
func createTestGlobe(em *ecs.EntityManager, points int, speed float64) testGlobe {
	anim := drift.NewAnimator(drift.DefaultConfig(), rand.New(rand.NewSource(1)))

	group := em.CreateEntity()
	ecs.AddComponent(em, group, &components.TransformComponent{})
	ecs.AddComponent(em, group, &components.DriftComponent{Animator: anim})

	sphere := em.CreateEntity()
	ecs.AddComponent(em, sphere, &components.TransformComponent{})
	ecs.AddComponent(em, sphere, &components.GroupComponent{Parent: group})
	ecs.AddComponent(em, sphere, &components.RotatorComponent{AngularSpeed: speed})
	ecs.AddComponent(em, sphere, &components.WireSphereComponent{
		Radius:         10,
		WidthSegments:  8,
		HeightSegments: 6,
		Color:          color.RGBA{R: 0x67, G: 0x52, B: 0x75, A: 255},
	})

	cloud := em.CreateEntity()
	ecs.AddComponent(em, cloud, &components.TransformComponent{})
	ecs.AddComponent(em, cloud, &components.GroupComponent{Parent: group})
	ecs.AddComponent(em, cloud, &components.RotatorComponent{AngularSpeed: speed})
	ecs.AddComponent(em, cloud, &components.PointCloudComponent{
		Cloud: pointcloud.Generate(points, rand.New(rand.NewSource(2)), pointcloud.DefaultOptions()),
		Size:  0.02,
	})

	return testGlobe{group: group, sphere: sphere, cloud: cloud, anim: anim}
}
