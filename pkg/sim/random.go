package sim

import "math/rand/v2"

// Rand 随机源接口
// 精灵选择、初速度、反弹能量、爆发数量全部经由此接口取随机数，
// 测试中可以注入固定种子或脚本化的随机源
type Rand interface {
	// Float64 返回 [0.0, 1.0) 区间的均匀随机数
	Float64() float64
	// IntN 返回 [0, n) 区间的均匀随机整数
	IntN(n int) int
}

// NewRand 使用给定种子创建确定性的随机源
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform 返回 [min, max) 区间的均匀随机数
func uniform(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
