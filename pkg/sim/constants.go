package sim

// 物理与生命周期常量
// 这些值在运行时不可配置（与原版网页游戏保持一致）
const (
	// Gravity 重力加速度（像素/帧²）
	Gravity = 0.5

	// BounceMargin 画布内侧的反弹边距（像素）
	// 碰撞在此内缩边界处解决，而不是画布原始边缘
	BounceMargin = 10.0

	// SmoothingFactor 帧间隔指数滑动平均系数
	SmoothingFactor = 0.9

	// InitialSmoothedDeltaMs 平滑帧间隔的初始值（毫秒），约等于 60 FPS
	InitialSmoothedDeltaMs = 16.0

	// CriticalFPS 临界帧率：平滑 FPS 低于该值时游戏结束
	CriticalFPS = 4

	// CriticalFPSDelayMs 游戏开始后的宽限期（毫秒），期间不检查临界帧率
	CriticalFPSDelayMs = 2000.0

	// BounceFractionMin/Max 底部反弹目标高度占画布高度的比例范围
	BounceFractionMin = 0.05
	BounceFractionMax = 0.95

	// SpawnSpeedX 新球水平速度范围 [-SpawnSpeedX, SpawnSpeedX]
	SpawnSpeedX = 5.0
	// SpawnSpeedY 新球垂直速度范围 [-SpawnSpeedY, SpawnSpeedY]
	SpawnSpeedY = 2.5

	// BurstMin/BurstMax 一次爆发生成的球数范围（闭区间）
	BurstMin = 7
	BurstMax = 11
)
