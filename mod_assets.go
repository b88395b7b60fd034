package emojiscape

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

type AssetId string

// spriteTextureSize is the edge length every sprite texture is resampled to
// so the renderer can assume one uniform texel layout.
const spriteTextureSize = 128

type TextureAsset struct {
	version uint
	texels  []uint8
	width   uint32
	height  uint32
}

// AssetServer caches decoded textures by source path: loading the same file
// twice returns the cached asset. All access happens on the single update
// thread, so no locking is needed.
type AssetServer struct {
	textures  map[AssetId]TextureAsset
	pathCache map[string]AssetId

	placeholder AssetId
}

type AssetServerModule struct{}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&AssetServer{
		textures:  make(map[AssetId]TextureAsset),
		pathCache: make(map[string]AssetId),
	})
}

// LoadTexture decodes a PNG from disk into an RGBA texture asset, resampling
// to the uniform sprite resolution. Repeated loads of the same path hit the
// cache.
func (server *AssetServer) LoadTexture(filename string) (AssetId, error) {
	if id, ok := server.pathCache[filename]; ok {
		return id, nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("open texture %s: %w", filename, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode texture %s: %w", filename, err)
	}

	rgba := toUniformRGBA(img)

	id := makeAssetId()
	server.textures[id] = TextureAsset{
		version: 0,
		texels:  rgba.Pix,
		width:   uint32(rgba.Rect.Dx()),
		height:  uint32(rgba.Rect.Dy()),
	}
	server.pathCache[filename] = id

	return id, nil
}

// PlaceholderTexture returns the shared fallback texture: a solid marker
// color that makes missing assets visible instead of crashing the demo.
func (server *AssetServer) PlaceholderTexture() AssetId {
	if server.placeholder != "" {
		return server.placeholder
	}

	texels := make([]uint8, spriteTextureSize*spriteTextureSize*4)
	for i := 0; i < len(texels); i += 4 {
		texels[i+0] = 0xE3 // red marker
		texels[i+1] = 0x2B
		texels[i+2] = 0x2B
		texels[i+3] = 0xFF
	}

	id := makeAssetId()
	server.textures[id] = TextureAsset{
		texels: texels,
		width:  spriteTextureSize,
		height: spriteTextureSize,
	}
	server.placeholder = id
	return id
}

func (server *AssetServer) texture(id AssetId) (TextureAsset, bool) {
	asset, ok := server.textures[id]
	return asset, ok
}

func toUniformRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok &&
		bounds.Dx() == spriteTextureSize && bounds.Dy() == spriteTextureSize {
		return rgba
	}

	dst := image.NewRGBA(image.Rect(0, 0, spriteTextureSize, spriteTextureSize))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, bounds, draw.Over, nil)
	return dst
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
