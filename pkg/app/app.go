// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/web3events/landing/pkg/config"
	"github.com/web3events/landing/pkg/embedded"
	"github.com/web3events/landing/pkg/game"
	"github.com/web3events/landing/pkg/scenes"
)

// gdataAppName 持久化设置使用的应用名
const gdataAppName = "web3events_landing"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 覆盖默认配置的 YAML 文件，为空则只使用内嵌配置
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Persist 将窗口设置保存到用户数据目录；默认不产生任何持久化状态
	Persist bool
	// Opener 打开外部链接，nil 时使用系统浏览器
	Opener game.LinkOpener
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg             *config.LandingConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	closed                   bool
}

// NewApp 创建并初始化应用
//
// 内嵌资源应在调用前通过 embedded.Init() 初始化；未初始化时使用内置默认配置。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	landingConfig, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	var gdataManager *gdata.Manager
	if cfg.Persist {
		gdataManager, err = gdata.Open(gdata.Config{AppName: gdataAppName})
		if err != nil {
			// 无法持久化不是致命错误，退回内存设置
			log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
			gdataManager = nil
		}
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	resourceManager, err := game.NewResourceManager()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	opener := cfg.Opener
	if opener == nil {
		opener = game.BrowserOpener{}
	}

	sceneManager := game.NewSceneManager()
	landing := scenes.NewLandingScene(scenes.LandingSceneOptions{
		Config: landingConfig,
		Fonts:  resourceManager,
		Opener: opener,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	sceneManager.SwitchTo(landing)

	return &App{
		cfg:             landingConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadConfig 内嵌默认配置 + 可选的覆盖文件
func loadConfig(path string) (*config.LandingConfig, error) {
	base := config.DefaultLandingConfig()
	if embedded.IsInitialized() {
		data, err := embedded.ReadFile(embedded.LandingConfigPath)
		if err != nil {
			return nil, fmt.Errorf("内嵌配置读取失败: %w", err)
		}
		base, err = config.ParseLandingConfig(data, base)
		if err != nil {
			return nil, fmt.Errorf("内嵌配置解析失败: %w", err)
		}
		log.Printf("[Config] 加载内嵌配置: %s", embedded.LandingConfigPath)
	}

	if path == "" {
		return base, nil
	}
	cfg, err := config.LoadLandingConfig(path, base)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载覆盖配置: %s", path)
	return cfg, nil
}

// ApplyWindowSettings 设置桌面窗口属性（标题、尺寸、全屏）
// 移动端不需要调用
func (a *App) ApplyWindowSettings() {
	w, h := a.settingsManager.WindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(game.MinWindowWidth, game.MinWindowHeight, -1, -1)
	ebiten.SetFullscreen(a.settingsManager.GetSettings().Fullscreen)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.settingsManager.WindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		// 进入全屏前记住窗口尺寸
		a.settingsManager.SetWindowSize(ebiten.WindowSize())
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}

	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑屏幕尺寸与窗口尺寸一致，页面随窗口重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Close 退出当前场景并保存窗口设置
// 多次调用是安全的
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	a.sceneManager.Close()

	if a.settingsManager.Persistent() && !a.settingsManager.GetSettings().Fullscreen {
		a.settingsManager.SetWindowSize(ebiten.WindowSize())
	}
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetConfig 返回生效的落地页配置
func (a *App) GetConfig() *config.LandingConfig {
	return a.cfg
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
