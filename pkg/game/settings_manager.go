package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 窗口尺寸下限
const (
	MinWindowWidth  = 320
	MinWindowHeight = 240
)

// WindowSettings 窗口偏好设置
// WindowWidth/WindowHeight 为 0 表示使用配置文件中的默认尺寸
type WindowSettings struct {
	Fullscreen   bool `yaml:"fullscreen"`   // 启动时是否全屏
	WindowWidth  int  `yaml:"windowWidth"`  // 上次的窗口宽度
	WindowHeight int  `yaml:"windowHeight"` // 上次的窗口高度
}

// DefaultSettings 返回默认设置
func DefaultSettings() *WindowSettings {
	return &WindowSettings{}
}

// SettingsManager 设置管理器
// 负责窗口偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（仅内存）
	settings     *WindowSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// NewSettingsManager 创建新的设置管理器实例
//
// gdataManager 为 nil 时只在内存中保存设置，不产生任何持久化状态。
// 加载失败不是致命错误，会回退到默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Persistent 设置是否会写入磁盘
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Load 从 gdata 加载设置
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded WindowSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 非法尺寸直接丢弃
	if loaded.WindowWidth < MinWindowWidth || loaded.WindowHeight < MinWindowHeight {
		loaded.WindowWidth, loaded.WindowHeight = 0, 0
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded (fullscreen=%v, size=%dx%d)",
		loaded.Fullscreen, loaded.WindowWidth, loaded.WindowHeight)
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *WindowSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetWindowSize 记录窗口尺寸，小于下限的值会被提升到下限
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetWindowSize(width, height int) {
	sm.settings.WindowWidth = max(width, MinWindowWidth)
	sm.settings.WindowHeight = max(height, MinWindowHeight)
}

// WindowSize 返回保存的窗口尺寸；未保存时返回给定的默认值
func (sm *SettingsManager) WindowSize(defaultWidth, defaultHeight int) (int, int) {
	if sm.settings.WindowWidth == 0 || sm.settings.WindowHeight == 0 {
		return defaultWidth, defaultHeight
	}
	return sm.settings.WindowWidth, sm.settings.WindowHeight
}
