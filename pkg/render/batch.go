package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaxVerticesPerChunk 单次 DrawTriangles 的顶点上限（uint16 索引）
const MaxVerticesPerChunk = 65532

// Color 直通 alpha 的浮点颜色，用于顶点着色
type Color struct {
	R, G, B, A float32
}

// ColorFromRGBA 从 color.RGBA 转换，并乘以额外的不透明度
func ColorFromRGBA(c color.RGBA, opacity float64) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255 * float32(opacity),
	}
}

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// white 返回 1x1 的白色源图像（内边距避免采样到边缘）
func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

type chunk struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// Batch 可复用的彩色四边形缓冲区
//
// 每帧先 Reset，再 Add*，最后 Flush。底层切片跨帧复用，
// 稳定后不再分配内存。
type Batch struct {
	chunks []chunk
	cur    int
}

// NewBatch 创建批处理缓冲区，capacity 为预估的四边形数量
func NewBatch(capacity int) *Batch {
	if capacity <= 0 {
		capacity = 64
	}
	vcap := capacity * 4
	if vcap > MaxVerticesPerChunk {
		vcap = MaxVerticesPerChunk
	}
	return &Batch{
		chunks: []chunk{{
			vertices: make([]ebiten.Vertex, 0, vcap),
			indices:  make([]uint16, 0, vcap/4*6),
		}},
	}
}

// Reset 清空累积的几何，保留底层内存
func (b *Batch) Reset() {
	for i := range b.chunks {
		b.chunks[i].vertices = b.chunks[i].vertices[:0]
		b.chunks[i].indices = b.chunks[i].indices[:0]
	}
	b.cur = 0
}

// VertexCount 当前累积的顶点总数
func (b *Batch) VertexCount() int {
	n := 0
	for i := 0; i <= b.cur && i < len(b.chunks); i++ {
		n += len(b.chunks[i].vertices)
	}
	return n
}

// QuadCount 当前累积的四边形总数
func (b *Batch) QuadCount() int {
	return b.VertexCount() / 4
}

// ChunkCount 非空分块数量（即 Flush 时的 DrawTriangles 调用次数）
func (b *Batch) ChunkCount() int {
	n := 0
	for i := 0; i <= b.cur && i < len(b.chunks); i++ {
		if len(b.chunks[i].vertices) > 0 {
			n++
		}
	}
	return n
}

// reserve 返回可以再容纳 4 个顶点的分块
func (b *Batch) reserve() *chunk {
	if len(b.chunks) == 0 {
		b.chunks = append(b.chunks, chunk{})
	}
	c := &b.chunks[b.cur]
	if len(c.vertices)+4 <= MaxVerticesPerChunk {
		return c
	}
	b.cur++
	if b.cur == len(b.chunks) {
		b.chunks = append(b.chunks, chunk{})
	}
	return &b.chunks[b.cur]
}

// AddQuadColors 添加任意四边形，顶点顺序为 0-1-2-3（环绕），每个顶点独立着色
func (b *Batch) AddQuadColors(xs, ys [4]float64, cs [4]Color) {
	c := b.reserve()
	base := uint16(len(c.vertices))
	for i := 0; i < 4; i++ {
		c.vertices = append(c.vertices, ebiten.Vertex{
			DstX:   float32(xs[i]),
			DstY:   float32(ys[i]),
			SrcX:   1,
			SrcY:   1,
			ColorR: cs[i].R,
			ColorG: cs[i].G,
			ColorB: cs[i].B,
			ColorA: cs[i].A,
		})
	}
	c.indices = append(c.indices, base, base+1, base+2, base, base+2, base+3)
}

// AddQuad 添加单色四边形
func (b *Batch) AddQuad(xs, ys [4]float64, clr Color) {
	b.AddQuadColors(xs, ys, [4]Color{clr, clr, clr, clr})
}

// AddRect 添加轴对齐矩形
func (b *Batch) AddRect(x, y, w, h float64, clr Color) {
	b.AddQuad(
		[4]float64{x, x + w, x + w, x},
		[4]float64{y, y, y + h, y + h},
		clr,
	)
}

// AddVerticalGradient 添加上下渐变的矩形
func (b *Batch) AddVerticalGradient(x, y, w, h float64, top, bottom Color) {
	b.AddQuadColors(
		[4]float64{x, x + w, x + w, x},
		[4]float64{y, y, y + h, y + h},
		[4]Color{top, top, bottom, bottom},
	)
}

// AddPoint 添加以 (cx, cy) 为中心、边长 size 的方形点
func (b *Batch) AddPoint(cx, cy, size float64, clr Color) {
	half := size / 2
	b.AddRect(cx-half, cy-half, size, size, clr)
}

// AddLine 添加宽度为 width 的线段
func (b *Batch) AddLine(x0, y0, x1, y1, width float64, clr Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// 法线方向偏移半个线宽
	nx, ny := -dy/length*width/2, dx/length*width/2
	b.AddQuad(
		[4]float64{x0 + nx, x1 + nx, x1 - nx, x0 - nx},
		[4]float64{y0 + ny, y1 + ny, y1 - ny, y0 - ny},
		clr,
	)
}

// Flush 将累积的几何绘制到 dst
func (b *Batch) Flush(dst *ebiten.Image) {
	src := white()
	op := &ebiten.DrawTrianglesOptions{}
	for i := 0; i <= b.cur && i < len(b.chunks); i++ {
		c := &b.chunks[i]
		if len(c.vertices) == 0 {
			continue
		}
		dst.DrawTriangles(c.vertices, c.indices, src, op)
	}
}
