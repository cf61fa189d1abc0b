package utils

import "bytes"

// packageFromCmdline 从 /proc/self/cmdline 的内容中取出 Android 包名
//
// cmdline 以 NUL 分隔参数，第一个参数是进程名。
// 应用的子进程名形如 "com.example.app:worker"，冒号之后的部分被去掉。
func packageFromCmdline(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	if i := bytes.IndexByte(data, ':'); i >= 0 {
		data = data[:i]
	}
	return string(bytes.TrimSpace(data))
}
