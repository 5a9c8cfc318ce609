package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (e.g., the landing page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Lifecycle 是一个可选接口，场景在成为活动场景 / 不再活动时收到通知
//
// 实现此接口的场景：
//   - OnEnter 在 SwitchTo 切换到此场景后调用（启动定时器等）
//   - OnExit 在切换到其他场景或窗口关闭时调用（停止定时器、释放资源）
//
// OnExit 返回后场景不应再产生任何副作用。
type Lifecycle interface {
	OnEnter()
	OnExit()
}
