package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 默认配置文件路径（嵌入资源与磁盘通用）
const DefaultConfigPath = "data/ballstorm.yaml"

// GameConfig 游戏配置
//
// 物理常量（重力、反弹边距、临界帧率）不在此配置中，它们在运行时不可调整。
// 这里只包含窗口、HUD、精灵目录和终端前端相关的外围参数。
//
// 配置文件位置: data/ballstorm.yaml
type GameConfig struct {
	// Window 窗口配置
	Window WindowConfig `yaml:"window"`

	// HUD 分数/FPS 显示配置
	HUD HUDConfig `yaml:"hud"`

	// Sprites 精灵变体列表，生成时均匀随机选择
	Sprites []SpriteSpec `yaml:"sprites"`

	// Terminal 终端前端配置
	Terminal TerminalConfig `yaml:"terminal"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`  // 初始窗口宽度
	Height int    `yaml:"height"` // 初始窗口高度
	Margin int    `yaml:"margin"` // 画布与窗口边缘的留白
}

// HUDConfig HUD 配置
type HUDConfig struct {
	// DisplayIntervalMs FPS 显示的最小刷新间隔（毫秒）
	DisplayIntervalMs float64 `yaml:"displayIntervalMs"`
}

// SpriteSpec 单个精灵变体
type SpriteSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"` // "#RRGGBB"
	Glyph  string  `yaml:"glyph"` // 终端前端使用的字符
}

// TerminalConfig 终端前端配置
//
// 终端画布以虚拟像素计，每个字符格对应 CellWidth x CellHeight 像素，
// 这样物理常量在终端和窗口中表现一致。
type TerminalConfig struct {
	CellWidth       float64 `yaml:"cellWidth"`
	CellHeight      float64 `yaml:"cellHeight"`
	FrameIntervalMs float64 `yaml:"frameIntervalMs"`
}

// DefaultGameConfig 返回内置默认配置（与 data/ballstorm.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:  "Ball Storm",
			Width:  960,
			Height: 720,
			Margin: 20,
		},
		HUD: HUDConfig{
			DisplayIntervalMs: 500,
		},
		Sprites: []SpriteSpec{
			{Name: "ball1", Width: 48, Height: 48, Color: "#e74c3c", Glyph: "●"},
			{Name: "ball2", Width: 40, Height: 40, Color: "#f1c40f", Glyph: "○"},
			{Name: "ball3", Width: 56, Height: 56, Color: "#2ecc71", Glyph: "◉"},
			{Name: "ball4", Width: 44, Height: 44, Color: "#3498db", Glyph: "◍"},
			{Name: "ball5", Width: 52, Height: 52, Color: "#9b59b6", Glyph: "◎"},
			{Name: "ball6", Width: 36, Height: 36, Color: "#e67e22", Glyph: "•"},
		},
		Terminal: TerminalConfig{
			CellWidth:       8,
			CellHeight:      16,
			FrameIntervalMs: 16,
		},
	}
}

// LoadGameConfig 从磁盘加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/ballstorm.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的游戏配置
// 未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	// 精灵列表整体替换，不与默认列表合并
	cfg.Sprites = nil

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if len(cfg.Sprites) == 0 {
		cfg.Sprites = DefaultGameConfig().Sprites
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查:
//   - 窗口尺寸为正，留白非负且小于窗口一半
//   - HUD 刷新间隔非负
//   - 精灵列表非空，名称唯一，尺寸为正，颜色可解析
//   - 终端字符格尺寸与帧间隔为正
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Margin < 0 || c.Window.Margin*2 >= c.Window.Width || c.Window.Margin*2 >= c.Window.Height {
		return fmt.Errorf("window margin %d invalid for %dx%d window", c.Window.Margin, c.Window.Width, c.Window.Height)
	}
	if c.HUD.DisplayIntervalMs < 0 {
		return fmt.Errorf("hud displayIntervalMs must not be negative: %.1f", c.HUD.DisplayIntervalMs)
	}
	if _, err := NewSpriteCatalog(c.Sprites); err != nil {
		return err
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive: %.1fx%.1f", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Terminal.FrameIntervalMs <= 0 {
		return fmt.Errorf("terminal frameIntervalMs must be positive: %.1f", c.Terminal.FrameIntervalMs)
	}
	return nil
}
