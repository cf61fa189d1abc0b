//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保设置存档目录 /data/data/{包名}/saves 存在且可写
//
// gdata 在 Android 上把数据写在这个目录下，但不会预先创建它，
// 所以必须在打开设置存储之前调用。
func EnsureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to read process name: %w", err)
	}
	pkg := packageFromCmdline(cmdline)
	if pkg == "" {
		return fmt.Errorf("empty process name in /proc/self/cmdline")
	}

	savesDir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(savesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	check := filepath.Join(savesDir, ".ballstorm_write_check")
	if err := os.WriteFile(check, nil, 0o644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(check)
}
