// ballstorm-term 在终端中运行 Ball Storm
//
// 用法:
//
//	go run ./cmd/ballstorm-term [--verbose] [--log ballstorm-term.log] [--seed storm] [--config data/ballstorm.yaml]
//
// 终端需要支持鼠标上报。按住左键连续生成，Esc/q 退出，r 重新开始，s 切换音效。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/decker502/ballstorm/internal/diag"
	"github.com/decker502/ballstorm/internal/term"
	"github.com/decker502/ballstorm/pkg/config"
	"github.com/decker502/ballstorm/pkg/game"
	"github.com/decker502/ballstorm/pkg/timeline"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出（写入 --log 文件）")
	logPath := flag.String("log", "ballstorm-term.log", "日志文件路径（终端被游戏画面占用）")
	seed := flag.String("seed", "", "随机种子字符串（默认读取 BALLSTORM_SEED，仍为空则使用当前时间）")
	configPath := flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	flag.Parse()

	if err := run(*verbose, *logPath, *seed, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "ballstorm-term: %v\n", err)
		os.Exit(1)
	}
}

func run(verbose bool, logPath, seed, configPath string) error {
	closeLog, err := setupLogging(verbose, logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	env := config.LoadEnv()
	if seed == "" {
		seed = env.Seed
	}

	flush, err := diag.StartSentry(env.SentryDSN, "ballstorm-term", env.Environment)
	if err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	defer flush()

	diag.StartStatsView(env.StatsViewAddr)

	gameConfig := config.DefaultGameConfig()
	if configPath != "" {
		if gameConfig, err = config.LoadGameConfig(configPath); err != nil {
			return err
		}
	}

	catalog, err := config.NewSpriteCatalog(gameConfig.Sprites)
	if err != nil {
		return fmt.Errorf("精灵目录加载失败: %w", err)
	}

	storage, err := game.OpenStorage(game.AppName)
	if err != nil {
		log.Printf("[Main] Warning: %v (settings will not persist)", err)
	}
	settings, err := game.NewSettingsManager(storage)
	if err != nil {
		return fmt.Errorf("设置加载失败: %w", err)
	}

	cues, err := term.NewSoundCues(
		func() bool { return settings.GetSettings().SoundEnabled },
		func() float64 { return settings.GetSettings().SoundVolume },
	)
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("[Main] Audio initialization failed: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	g := term.New(screen, term.Options{
		Config:     gameConfig,
		Catalog:    catalog,
		Settings:   settings,
		Clock:      timeline.NewWallClock(),
		Cues:       cues,
		Seed:       game.ResolveSeed(seed),
		OnGameOver: diag.ReportGameOver,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// setupLogging 配置日志输出
//
// 标准 log 的输出经 logrus 写入日志文件，带时间戳；非 verbose 模式丢弃全部日志。
//
// 返回:
//   - func(): 关闭日志文件
//   - error: 打开日志文件失败
func setupLogging(verbose bool, path string) (func(), error) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	logger.SetOutput(f)

	w := logger.Writer()
	log.SetFlags(0)
	log.SetOutput(w)

	return func() {
		log.SetOutput(io.Discard)
		w.Close()
		f.Close()
	}, nil
}
