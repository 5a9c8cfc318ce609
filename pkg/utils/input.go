// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针状态
// 统一处理鼠标和触摸输入，优先检测触摸
type PointerState struct {
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// Pressed 是否按下（鼠标左键或有活动触摸）
	Pressed bool
	// JustReleased 本帧是否刚刚释放
	JustReleased bool
	// Present 指针位置是否有效（触摸设备在无触摸时为 false）
	Present bool
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// ReadPointer 读取当前帧的指针状态
// 每个 tick 调用一次
func ReadPointer() PointerState {
	// 检查触摸释放：释放后触摸 ID 已不存在，使用保存的位置
	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 {
		return PointerState{X: lastTouchX, Y: lastTouchY, JustReleased: true, Present: true}
	}

	// 检查活动触摸（移动设备）
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		return PointerState{X: lastTouchX, Y: lastTouchY, Pressed: true, Present: true}
	}

	if IsMobile() {
		return PointerState{}
	}

	// 鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	return PointerState{
		X:            x,
		Y:            y,
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Present:      true,
	}
}
