package config

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvConfig 来自环境变量（或 .env 文件）的运行参数
type EnvConfig struct {
	// Seed 随机种子字符串（BALLSTORM_SEED），命令行 --seed 优先
	Seed string
	// SentryDSN 崩溃上报地址（SENTRY_DSN），为空则不上报
	SentryDSN string
	// StatsViewAddr 运行时统计页面监听地址（STATSVIEW_ADDR），为空则不启动
	StatsViewAddr string
	// Environment 上报使用的环境名（BALLSTORM_ENV）
	Environment string
}

// LoadEnv 加载 .env 文件（如果存在）并读取环境变量
//
// 参数:
//   - files: 要加载的 .env 文件，为空时加载当前目录的 .env
//
// .env 不存在不是错误；已存在的环境变量不会被 .env 覆盖。
func LoadEnv(files ...string) *EnvConfig {
	// Load .env file if it exists
	godotenv.Load(files...)

	return &EnvConfig{
		Seed:          os.Getenv("BALLSTORM_SEED"),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		StatsViewAddr: os.Getenv("STATSVIEW_ADDR"),
		Environment:   getEnv("BALLSTORM_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
