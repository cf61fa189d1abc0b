package sim

import "math"

// Ball 弹球
// 位置以左上角为锚点，坐标系为画布像素空间
type Ball struct {
	X, Y   float64 // 左上角位置
	VX, VY float64 // 速度（像素/帧）

	Sprite int // 精灵变体索引，仅用于渲染，不影响物理

	Width, Height float64 // 碰撞包围盒尺寸（由精灵变体决定）
}

// integrate 施加重力并积分位置
func (b *Ball) integrate() {
	b.VY += Gravity
	b.X += b.VX
	b.Y += b.VY
}

// resolveBounds 按固定顺序处理边界碰撞：左、右、下、上
// 顺序不可调整，后面的检查不能撤销前面已做的修正
//
// 参数:
//   - canvasWidth, canvasHeight: 当前画布尺寸
//   - rng: 随机源，用于底部反弹的能量随机化
//
// 返回:
//   - bool: 本帧是否发生了底部反弹
func (b *Ball) resolveBounds(canvasWidth, canvasHeight float64, rng Rand) bool {
	// 左右边界：水平速度完全弹性反转
	if b.X < BounceMargin {
		b.X = BounceMargin
		b.VX = -b.VX
	}
	if b.X+b.Width > canvasWidth-BounceMargin {
		b.X = canvasWidth - BounceMargin - b.Width
		b.VX = -b.VX
	}

	// 底部边界：丢弃入射速度，重新随机一个向上的速度
	// 目标高度为画布高度的 5% ~ 95%，v = sqrt(2 * g * h)
	bounced := false
	if b.Y+b.Height > canvasHeight-BounceMargin {
		b.Y = canvasHeight - BounceMargin - b.Height
		fraction := uniform(rng, BounceFractionMin, BounceFractionMax)
		b.VY = -BounceSpeed(fraction, canvasHeight)
		bounced = true
	}

	// 顶部边界：强制向下运动，避免贴顶
	if b.Y < BounceMargin {
		b.Y = BounceMargin
		b.VY = math.Abs(b.VY)
	}

	return bounced
}

// BounceSpeed 计算到达 fraction*canvasHeight 高度所需的向上速度大小
func BounceSpeed(fraction, canvasHeight float64) float64 {
	return math.Sqrt(2 * Gravity * (fraction * canvasHeight))
}
