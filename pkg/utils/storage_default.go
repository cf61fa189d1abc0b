//go:build !android

package utils

// EnsureStorageDir 桌面端 gdata 自己创建设置目录，这里什么都不做
func EnsureStorageDir() error {
	return nil
}
