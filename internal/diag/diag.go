// Package diag 提供可选的诊断设施：崩溃上报和运行时统计页面
//
// 两者都由环境变量开启，默认关闭。游戏本身就是一个渲染压力测试，
// 统计页面用来观察球数增长时的内存和 GC 行为。
package diag

import (
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// FlushTimeout 退出时等待上报完成的最长时间
const FlushTimeout = 2 * time.Second

// StartSentry 初始化 sentry 崩溃上报
//
// 参数:
//   - dsn: sentry DSN，为空时不做任何事
//   - release: 版本标识（通常为程序名）
//   - environment: 环境名
//
// 返回:
//   - func(): 退出时调用，上报未处理的 panic 并等待发送完成；dsn 为空时为空操作
//   - error: 初始化失败
func StartSentry(dsn, release, environment string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          release,
		Environment:      environment,
		AttachStacktrace: true,
	})
	if err != nil {
		return func() {}, fmt.Errorf("failed to init sentry: %w", err)
	}
	log.Printf("[Diag] Sentry enabled (release %s, env %s)", release, environment)

	return func() {
		if r := recover(); r != nil {
			sentry.CurrentHub().Recover(r)
			sentry.Flush(FlushTimeout)
			panic(r)
		}
		sentry.Flush(FlushTimeout)
	}, nil
}

// ReportGameOver 把一局的结果记录为 sentry 面包屑
// 之后的崩溃报告会带上最近几局的分数和帧率
func ReportGameOver(finalScore, fps int) {
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category: "game",
		Message:  fmt.Sprintf("game over: %d balls at %d fps", finalScore, fps),
		Level:    sentry.LevelInfo,
	})
}

// StartStatsView 在 addr 上启动运行时统计页面
//
// addr 为空时不启动。页面在后台 goroutine 中运行直到进程退出。
func StartStatsView(addr string) {
	if addr == "" {
		return
	}

	// set configurations before calling `statsview.New()` method
	viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))

	mgr := statsview.New()
	go mgr.Start()
	log.Printf("[Diag] StatsView listening on http://%s/debug/statsview", addr)
}
