package game

import (
	"time"

	"github.com/zeebo/xxh3"
)

// SeedFromString 从字符串派生随机种子
// 相同的字符串总是得到相同的种子，用于 --seed 参数回放同一局的随机序列
func SeedFromString(s string) uint64 {
	return xxh3.HashString(s)
}

// ResolveSeed 解析种子：非空字符串按 SeedFromString 派生，否则使用当前时间
func ResolveSeed(s string) uint64 {
	if s == "" {
		return uint64(time.Now().UnixNano())
	}
	return SeedFromString(s)
}
