//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 移动模式下前端隐藏键盘提示并禁用 F11 全屏切换
// 可以通过设置环境变量 BALLSTORM_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv("BALLSTORM_MOBILE_EMULATE") == "1"
}
