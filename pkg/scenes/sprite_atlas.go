package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/ballstorm/pkg/config"
)

// SpriteAtlas 精灵图集
//
// 每个精灵变体是一张按目录尺寸生成的实心圆图片，颜色取自配置。
// 图片在第一次绘制时生成。
type SpriteAtlas struct {
	catalog *config.SpriteCatalog
	images  []*ebiten.Image
}

// NewSpriteAtlas 创建精灵图集
func NewSpriteAtlas(catalog *config.SpriteCatalog) *SpriteAtlas {
	return &SpriteAtlas{
		catalog: catalog,
		images:  make([]*ebiten.Image, catalog.Len()),
	}
}

// Image 返回精灵变体 i 的图片
func (a *SpriteAtlas) Image(i int) *ebiten.Image {
	if img := a.images[i]; img != nil {
		return img
	}

	w, h := a.catalog.Size(i)
	img := ebiten.NewImage(int(w+0.5), int(h+0.5))
	r := min(w, h) / 2
	vector.DrawFilledCircle(img, float32(w/2), float32(h/2), float32(r), a.catalog.Color(i), true)
	a.images[i] = img
	return img
}
