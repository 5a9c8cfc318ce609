package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/web3events/landing/pkg/components"
	"github.com/web3events/landing/pkg/ecs"
	"github.com/web3events/landing/pkg/render"
	"github.com/web3events/landing/pkg/utils"
)

// GlobeRenderSystem 绘制线框球和点云
//
// 每个实体的世界坐标 = 父分组位置 + 自身位置 + RotateY(局部顶点)。
// 线框先画，点云后画（点云不写深度，直接叠加）。
type GlobeRenderSystem struct {
	entityManager *ecs.EntityManager
	camera        render.Camera
	batch         *render.Batch

	spheres map[ecs.EntityID]*render.WireSphere
	scratch []utils.Vec3 // 线框顶点的世界坐标
}

// NewGlobeRenderSystem 创建地球渲染系统
func NewGlobeRenderSystem(em *ecs.EntityManager, camera render.Camera) *GlobeRenderSystem {
	return &GlobeRenderSystem{
		entityManager: em,
		camera:        camera,
		batch:         render.NewBatch(16384),
		spheres:       make(map[ecs.EntityID]*render.WireSphere),
	}
}

// Batch 返回内部批处理缓冲区（测试用）
func (s *GlobeRenderSystem) Batch() *render.Batch {
	return s.batch
}

// worldOffset 返回实体的平移（父分组 + 自身）和转角
func (s *GlobeRenderSystem) worldOffset(id ecs.EntityID) (utils.Vec3, float64) {
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return utils.Vec3{}, 0
	}
	offset := transform.Position
	if group, ok := ecs.GetComponent[*components.GroupComponent](s.entityManager, id); ok {
		if parent, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, group.Parent); ok {
			offset = offset.Add(parent.Position)
		}
	}
	return offset, transform.RotationY
}

// Build 将当前帧的几何写入批处理缓冲区
func (s *GlobeRenderSystem) Build(width, height int) {
	s.batch.Reset()

	for _, id := range ecs.GetEntitiesWith2[*components.WireSphereComponent, *components.TransformComponent](s.entityManager) {
		wc, _ := ecs.GetComponent[*components.WireSphereComponent](s.entityManager, id)
		s.buildWireSphere(id, wc, width, height)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PointCloudComponent, *components.TransformComponent](s.entityManager) {
		pc, _ := ecs.GetComponent[*components.PointCloudComponent](s.entityManager, id)
		s.buildPointCloud(id, pc, width, height)
	}
}

func (s *GlobeRenderSystem) buildWireSphere(id ecs.EntityID, wc *components.WireSphereComponent, width, height int) {
	ws, ok := s.spheres[id]
	if !ok || ws.Radius != wc.Radius || ws.WidthSegments != wc.WidthSegments || ws.HeightSegments != wc.HeightSegments {
		ws = render.NewWireSphere(wc.Radius, wc.WidthSegments, wc.HeightSegments)
		s.spheres[id] = ws
	}

	offset, angle := s.worldOffset(id)
	local := ws.Vertices()
	if cap(s.scratch) < len(local) {
		s.scratch = make([]utils.Vec3, len(local))
	}
	world := s.scratch[:len(local)]
	for i, v := range local {
		world[i] = v.RotateY(angle).Add(offset)
	}

	clr := render.ColorFromRGBA(wc.Color, 1)
	for _, e := range ws.Edges() {
		x0, y0, x1, y1, ok := s.camera.ProjectSegment(world[e.A], world[e.B], width, height)
		if !ok {
			continue
		}
		s.batch.AddLine(x0, y0, x1, y1, 1, clr)
	}
}

func (s *GlobeRenderSystem) buildPointCloud(id ecs.EntityID, pc *components.PointCloudComponent, width, height int) {
	offset, angle := s.worldOffset(id)
	cosA, sinA := math.Cos(angle), math.Sin(angle)

	pos := pc.Cloud.Positions
	col := pc.Cloud.Colors
	for i := 0; i+2 < len(pos); i += 3 {
		x, y, z := float64(pos[i]), float64(pos[i+1]), float64(pos[i+2])
		p := utils.Vec3{
			X: x*cosA + z*sinA + offset.X,
			Y: y + offset.Y,
			Z: -x*sinA + z*cosA + offset.Z,
		}

		sx, sy, depth, ok := s.camera.Project(p, width, height)
		if !ok {
			continue
		}
		size := math.Max(1, render.PointPixelSize(pc.Size, depth, height))
		s.batch.AddPoint(sx, sy, size, render.Color{R: col[i], G: col[i+1], B: col[i+2], A: 1})
	}
}

// Draw 构建并绘制到屏幕
func (s *GlobeRenderSystem) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	s.Build(b.Dx(), b.Dy())
	s.batch.Flush(screen)
}
