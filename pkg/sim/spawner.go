package sim

// SpriteCatalog 精灵变体目录
// 固定数量的视觉变体，每个变体有已知的宽高
type SpriteCatalog interface {
	// Len 变体数量，必须大于 0
	Len() int
	// Size 返回第 i 个变体的宽高
	Size(i int) (width, height float64)
}

// Spawner 将玩家的点击位置转换为新球
// 新球直接追加到 Simulation 的集合中，两者之间没有其他耦合
type Spawner struct {
	sim     *Simulation
	sprites SpriteCatalog
	rng     Rand
}

// NewSpawner 创建生成器
//
// 参数:
//   - sim: 目标模拟
//   - sprites: 精灵目录
//   - rng: 随机源（通常与模拟共用同一个）
func NewSpawner(sim *Simulation, sprites SpriteCatalog, rng Rand) *Spawner {
	return &Spawner{
		sim:     sim,
		sprites: sprites,
		rng:     rng,
	}
}

// SpawnOne 在 (x, y) 生成一个球
// 精灵均匀随机选择，vx ∈ [-5, 5]，vy ∈ [-2.5, 2.5]。
// 游戏结束后不生成，返回 false
func (sp *Spawner) SpawnOne(x, y float64) (Ball, bool) {
	if sp.sim.IsOver() {
		return Ball{}, false
	}

	sprite := sp.rng.IntN(sp.sprites.Len())
	width, height := sp.sprites.Size(sprite)
	b := Ball{
		X:      x,
		Y:      y,
		VX:     uniform(sp.rng, -SpawnSpeedX, SpawnSpeedX),
		VY:     uniform(sp.rng, -SpawnSpeedY, SpawnSpeedY),
		Sprite: sprite,
		Width:  width,
		Height: height,
	}

	if !sp.sim.add(b) {
		return Ball{}, false
	}
	return b, true
}

// SpawnBurst 在 (x, y) 生成 7~11 个球
// 返回实际生成的数量，游戏结束时为 0
func (sp *Spawner) SpawnBurst(x, y float64) int {
	if sp.sim.IsOver() {
		return 0
	}

	count := BurstMin + sp.rng.IntN(BurstMax-BurstMin+1)
	spawned := 0
	for i := 0; i < count; i++ {
		if _, ok := sp.SpawnOne(x, y); ok {
			spawned++
		}
	}
	return spawned
}
