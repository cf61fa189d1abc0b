// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/ballstorm/pkg/config"
	"github.com/decker502/ballstorm/pkg/game"
	"github.com/decker502/ballstorm/pkg/scenes"
	"github.com/decker502/ballstorm/pkg/timeline"
	"github.com/decker502/ballstorm/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子字符串，为空则使用当前时间
	Seed string
	// Game 游戏配置，为 nil 时使用内置默认配置
	Game *config.GameConfig
	// SkipStartScene 跳过开始界面，直接开始一局
	SkipStartScene bool
	// OnGameOver 每局结束时调用（最终球数、结束时帧率），可为 nil
	OnGameOver func(finalScore, fps int)
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	env          *scenes.Env
	clock        timeline.Clock
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 只创建游戏对象，不设置窗口属性；窗口属性由 ConfigureWindow 设置，
// 移动端不需要调用。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig := cfg.Game
	if gameConfig == nil {
		gameConfig = config.DefaultGameConfig()
	}
	if err := gameConfig.Validate(); err != nil {
		return nil, fmt.Errorf("游戏配置无效: %w", err)
	}

	catalog, err := config.NewSpriteCatalog(gameConfig.Sprites)
	if err != nil {
		return nil, fmt.Errorf("精灵目录加载失败: %w", err)
	}
	log.Printf("[Config] 加载 %d 个精灵变体: %v", catalog.Len(), catalog.Names())

	settingsManager, err := game.NewSettingsManager(openStorage())
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	env := &scenes.Env{
		Config:     gameConfig,
		Catalog:    catalog,
		Atlas:      scenes.NewSpriteAtlas(catalog),
		Canvas:     scenes.NewCanvasGeometry(gameConfig.Window.Margin, gameConfig.Window.Width, gameConfig.Window.Height),
		Pointer:    utils.NewPointerTracker(),
		Settings:   settingsManager,
		OnGameOver: cfg.OnGameOver,
		Seed:       game.ResolveSeed(cfg.Seed),
	}

	// Update 与显示刷新同步（每个显示帧调用一次），
	// Session.Frame 的调用频率就是实际帧率，帧率崩溃检测依赖这一点
	ebiten.SetTPS(ebiten.SyncWithFPS)

	sceneManager := game.NewSceneManager()
	if cfg.SkipStartScene {
		log.Printf("[App] SkipStartScene enabled, starting a game immediately")
		sceneManager.SwitchTo(scenes.NewPlayScene(env, sceneManager))
	} else {
		sceneManager.SwitchTo(scenes.NewStartScene(env, sceneManager))
	}

	return &App{
		sceneManager: sceneManager,
		env:          env,
		clock:        timeline.NewWallClock(),
		verbose:      cfg.Verbose,
	}, nil
}

// openStorage 打开设置存储，失败时返回 nil 进入降级模式
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
	}
	manager, err := game.OpenStorage(game.AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// ConfigureWindow 设置桌面窗口属性
func (a *App) ConfigureWindow() {
	w := a.env.Config.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if a.env.Settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
}

// Update 更新游戏逻辑
// 每个显示帧调用一次
func (a *App) Update() error {
	// F11 切换全屏，并保存到设置
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.env.Settings.SetFullscreen(fullscreen)
		if err := a.env.Settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
		log.Printf("[App] Fullscreen: %v", fullscreen)
	}

	a.sceneManager.Update(a.clock.NowMs())
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 逻辑尺寸等于窗口尺寸，画布跟随窗口大小变化
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.env.Canvas.SetOutsideSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
