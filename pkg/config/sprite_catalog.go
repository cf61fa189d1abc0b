package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/elliotchance/orderedmap/v2"
)

// SpriteCatalog 精灵目录
//
// 按配置顺序保存精灵变体，索引即 sim.Ball.Sprite 的取值。
// 实现 sim.SpriteCatalog 接口。
type SpriteCatalog struct {
	byName *orderedmap.OrderedMap[string, int] // 名称 -> 索引，保持配置顺序
	specs  []SpriteSpec
	colors []color.RGBA
}

// NewSpriteCatalog 根据配置创建精灵目录
//
// 参数:
//   - specs: 精灵配置列表
//
// 返回:
//   - *SpriteCatalog: 精灵目录
//   - error: 列表为空、名称重复、尺寸非正或颜色无法解析时返回错误
func NewSpriteCatalog(specs []SpriteSpec) (*SpriteCatalog, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("sprite catalog is empty")
	}

	c := &SpriteCatalog{
		byName: orderedmap.NewOrderedMap[string, int](),
		specs:  make([]SpriteSpec, 0, len(specs)),
		colors: make([]color.RGBA, 0, len(specs)),
	}

	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("sprite #%d has no name", i)
		}
		if _, exists := c.byName.Get(spec.Name); exists {
			return nil, fmt.Errorf("duplicate sprite name: %s", spec.Name)
		}
		if spec.Width <= 0 || spec.Height <= 0 {
			return nil, fmt.Errorf("sprite %s size must be positive: %.1fx%.1f", spec.Name, spec.Width, spec.Height)
		}
		clr, err := ParseHexColor(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", spec.Name, err)
		}

		c.byName.Set(spec.Name, len(c.specs))
		c.specs = append(c.specs, spec)
		c.colors = append(c.colors, clr)
	}

	return c, nil
}

// Len 精灵变体数量
func (c *SpriteCatalog) Len() int {
	return len(c.specs)
}

// Size 返回第 i 个变体的宽高
func (c *SpriteCatalog) Size(i int) (float64, float64) {
	return c.specs[i].Width, c.specs[i].Height
}

// Spec 返回第 i 个变体的完整配置
func (c *SpriteCatalog) Spec(i int) SpriteSpec {
	return c.specs[i]
}

// Color 返回第 i 个变体的颜色
func (c *SpriteCatalog) Color(i int) color.RGBA {
	return c.colors[i]
}

// Glyph 返回第 i 个变体在终端中显示的字符，未配置时为 'o'
func (c *SpriteCatalog) Glyph(i int) rune {
	if r, size := utf8.DecodeRuneInString(c.specs[i].Glyph); size > 0 && r != utf8.RuneError {
		return r
	}
	return 'o'
}

// Index 按名称查找变体索引
func (c *SpriteCatalog) Index(name string) (int, bool) {
	return c.byName.Get(name)
}

// Names 按配置顺序返回所有变体名称
func (c *SpriteCatalog) Names() []string {
	names := make([]string, 0, c.byName.Len())
	for el := c.byName.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RGB" 格式的颜色，空字符串视为白色
func ParseHexColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
