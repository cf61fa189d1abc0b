package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ballstorm/internal/diag"
	"github.com/decker502/ballstorm/pkg/app"
	"github.com/decker502/ballstorm/pkg/config"
	"github.com/decker502/ballstorm/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	seed := flag.String("seed", "", "随机种子字符串（默认读取 BALLSTORM_SEED，仍为空则使用当前时间）")
	configPath := flag.String("config", "", "游戏配置文件路径（默认使用内嵌的 data/ballstorm.yaml）")
	skipStart := flag.Bool("skip-start", false, "跳过开始界面，直接开始一局")
	flag.Parse()

	env := config.LoadEnv()
	if *seed == "" {
		*seed = env.Seed
	}

	flush, err := diag.StartSentry(env.SentryDSN, "ballstorm", env.Environment)
	if err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	defer flush()

	diag.StartStatsView(env.StatsViewAddr)

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameConfig, err := loadGameConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		Seed:           *seed,
		Game:           gameConfig,
		SkipStartScene: *skipStart,
		OnGameOver:     diag.ReportGameOver,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	gameApp.ConfigureWindow()

	// Start the game loop
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// loadGameConfig 加载游戏配置
// 指定了路径时从磁盘读取，否则读取内嵌的默认配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		log.Printf("[Main] Warning: embedded config unavailable: %v (using defaults)", err)
		return config.DefaultGameConfig(), nil
	}
	return config.ParseGameConfig(data)
}
