//go:build mobile

package utils

// IsMobile 移动端绑定编译时总是 true：隐藏键盘操作提示，不提供 F11 全屏切换
func IsMobile() bool {
	return true
}
