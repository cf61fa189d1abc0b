// validate-config 检查游戏配置文件
//
// 用法:
//
//	go run ./cmd/validate-config [data/ballstorm.yaml]
//
// 解析 YAML、执行配置校验并构建精灵目录，任何一步失败都以非零状态退出。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/ballstorm/pkg/config"
)

func main() {
	flag.Parse()

	path := config.DefaultConfigPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确，校验通过: %s\n", path)

	catalog, err := config.NewSpriteCatalog(cfg.Sprites)
	if err != nil {
		fmt.Printf("❌ 精灵目录无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 精灵变体数量: %d\n", catalog.Len())
	for i, name := range catalog.Names() {
		w, h := catalog.Size(i)
		fmt.Printf("   %-8s %3.0fx%-3.0f %s %c\n", name, w, h, catalog.Spec(i).Color, catalog.Glyph(i))
	}

	fmt.Printf("✅ 窗口 %dx%d，留白 %d，HUD 刷新间隔 %.0fms\n",
		cfg.Window.Width, cfg.Window.Height, cfg.Window.Margin, cfg.HUD.DisplayIntervalMs)
}
