package assets

import (
	"image"
	"image/color"

	"github.com/automoto/tilehop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// The atlas mirrors the level tileset: 16 columns of 16x16 sprites, global
// tile ID 1 at the top left.
const (
	atlasColumns = 16
	atlasCount   = 256
)

// Sprite ranges inside the atlas.
const (
	firstPlayerSprite = 225
	lastPlayerSprite  = 246
)

var (
	atlas       *ebiten.Image
	spriteCache = map[int]*ebiten.Image{}
)

// GetSprite returns the atlas sprite for a global tile ID, or nil for 0 and
// IDs outside the atlas.
func GetSprite(id int) *ebiten.Image {
	if id <= 0 || id > atlasCount {
		return nil
	}
	if img, ok := spriteCache[id]; ok {
		return img
	}
	if atlas == nil {
		atlas = buildAtlas()
	}
	img := atlas.SubImage(spriteRect(id)).(*ebiten.Image)
	spriteCache[id] = img
	return img
}

// PreloadSprites builds the atlas and caches every sprite up front.
func PreloadSprites() {
	for id := 1; id <= atlasCount; id++ {
		_ = GetSprite(id)
	}
}

func spriteRect(id int) image.Rectangle {
	size := config.World.TileSize
	local := id - 1
	x := (local % atlasColumns) * size
	y := (local / atlasColumns) * size
	return image.Rect(x, y, x+size, y+size)
}

func buildAtlas() *ebiten.Image {
	size := config.World.TileSize
	rows := (atlasCount + atlasColumns - 1) / atlasColumns
	img := ebiten.NewImage(atlasColumns*size, rows*size)
	for id := 1; id <= atlasCount; id++ {
		r := spriteRect(id)
		x, y := float32(r.Min.X), float32(r.Min.Y)
		switch {
		case id == config.World.SolidTile:
			drawBrick(img, x, y, float32(size))
		case id >= firstPlayerSprite && id <= lastPlayerSprite:
			drawPlayer(img, x, y, float32(size), id-firstPlayerSprite)
		default:
			drawPlain(img, x, y, float32(size), id)
		}
	}
	return img
}

var (
	brickFill   = color.RGBA{R: 148, G: 82, B: 60, A: 255}
	brickMortar = color.RGBA{R: 74, G: 40, B: 36, A: 255}
	playerBody  = color.RGBA{R: 238, G: 196, B: 92, A: 255}
	playerEye   = color.RGBA{R: 24, G: 20, B: 37, A: 255}
	playerFeet  = color.RGBA{R: 90, G: 105, B: 136, A: 255}
)

func drawBrick(dst *ebiten.Image, x, y, s float32) {
	vector.FillRect(dst, x, y, s, s, brickFill, false)
	half := s / 2
	vector.FillRect(dst, x, y+half-1, s, 1, brickMortar, false)
	vector.FillRect(dst, x, y+s-1, s, 1, brickMortar, false)
	vector.FillRect(dst, x+half, y, 1, half-1, brickMortar, false)
	vector.FillRect(dst, x, y+half, 1, half-1, brickMortar, false)
}

// drawPlayer draws one player frame. Frames differ in eye height and stride
// so the idle and walk cycles are visible without art.
func drawPlayer(dst *ebiten.Image, x, y, s float32, frame int) {
	bob := float32(frame % 2)
	vector.FillRect(dst, x+4, y+3+bob, s-8, s-6-bob, playerBody, false)
	vector.FillRect(dst, x+s-7, y+5+bob+float32(frame%3), 2, 2, playerEye, false)
	stride := float32(frame % 4)
	vector.FillRect(dst, x+4+stride, y+s-3, 3, 3, playerFeet, false)
	vector.FillRect(dst, x+s-7-stride, y+s-3, 3, 3, playerFeet, false)
}

func drawPlain(dst *ebiten.Image, x, y, s float32, id int) {
	c := color.RGBA{
		R: uint8(40 + id*37%48),
		G: uint8(36 + id*53%40),
		B: uint8(60 + id*29%56),
		A: 255,
	}
	vector.FillRect(dst, x+1, y+1, s-2, s-2, c, false)
}
