package main

import (
	"encoding/json"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/emojiscape/emojiscape"
)

func main() {
	configPath := flag.String("config", "emojiscape.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := emojiscape.LoadConfig(*configPath)
	logger := emojiscape.NewLog("emojiscape", cfg.Debug)
	if err != nil {
		logger.Warn("config unreadable, using defaults", "path", *configPath, "err", err)
	}

	setPath := filepath.Join(cfg.SetBaseDir, cfg.EmojiSetFile)
	bootstrapAssets(cfg, setPath, logger)

	app := emojiscape.NewAppBuilder().
		UseModule(
			emojiscape.LoggingModule{Prefix: "emojiscape", Debug: cfg.Debug},
			emojiscape.NewPlatformWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle),
			emojiscape.InputModule{},
			emojiscape.TimeModule{},
			emojiscape.AssetServerModule{},
			emojiscape.CameraModule{},
			emojiscape.SpriteFieldModule{
				Count:            cfg.SpriteCount,
				SetPath:          setPath,
				Group:            cfg.EmojiGroup,
				AssetBaseDir:     cfg.AssetBaseDir,
				ResolutionFolder: cfg.ResolutionFolder,
			},
			emojiscape.PostFxModule{},
			emojiscape.ControlsModule{},
			emojiscape.AnimationModule{},
			emojiscape.SpriteRenderModule{},
		).
		Build()

	app.Run()
}

// bootstrapAssets writes a minimal emoji set and matching PNGs when the asset
// tree is absent, so a fresh checkout shows something instead of a blank
// window.
func bootstrapAssets(cfg emojiscape.Config, setPath string, logger *emojiscape.Log) {
	if _, err := os.Stat(setPath); err == nil {
		return
	}

	emojis := []string{"😀", "😁", "😂", "😍", "😎", "😭"}

	logger.Info("no emoji set found, generating starter assets", "path", setPath)

	if err := os.MkdirAll(filepath.Dir(setPath), 0o755); err != nil {
		logger.Warn("cannot create set directory", "err", err)
		return
	}
	set := map[string][]string{cfg.EmojiGroup: emojis}
	data, _ := json.MarshalIndent(set, "", "  ")
	if err := os.WriteFile(setPath, data, 0o644); err != nil {
		logger.Warn("cannot write emoji set", "err", err)
		return
	}

	textureDir := filepath.Join(cfg.AssetBaseDir, cfg.ResolutionFolder)
	if err := os.MkdirAll(textureDir, 0o755); err != nil {
		logger.Warn("cannot create texture directory", "err", err)
		return
	}
	for i, emoji := range emojis {
		path := filepath.Join(textureDir, emojiscape.EmojiFilename(emoji))
		if err := writeStarterTexture(path, i); err != nil {
			logger.Warn("cannot write starter texture", "path", path, "err", err)
		}
	}
}

// writeStarterTexture renders a flat-colored disc, a stand-in glyph that at
// least shows alpha blending and the post filters working.
func writeStarterTexture(path string, seed int) error {
	const size = 128
	palette := []color.NRGBA{
		{0xF9, 0xC7, 0x4F, 0xFF},
		{0xF3, 0x72, 0x2C, 0xFF},
		{0x90, 0xBE, 0x6D, 0xFF},
		{0x57, 0x75, 0x90, 0xFF},
		{0xF9, 0x41, 0x44, 0xFF},
		{0x43, 0xAA, 0x8B, 0xFF},
	}
	fill := palette[seed%len(palette)]

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	radius := center - 4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, fill)
			}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
