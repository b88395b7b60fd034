package emojiscape

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the demo's startup settings. Everything has a sensible
// default; a missing or broken config file degrades to defaults rather than
// aborting.
type Config struct {
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
	WindowTitle  string `toml:"window_title"`

	SpriteCount      int    `toml:"sprite_count"`
	EmojiSetFile     string `toml:"emoji_set_file"`
	EmojiGroup       string `toml:"emoji_group"`
	SetBaseDir       string `toml:"set_base_dir"`
	AssetBaseDir     string `toml:"asset_base_dir"`
	ResolutionFolder string `toml:"resolution_folder"`

	Debug bool `toml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:      1280,
		WindowHeight:     720,
		WindowTitle:      "Emojiscape",
		SpriteCount:      30,
		EmojiSetFile:     "noto_emoji_regular.json",
		EmojiGroup:       "Smileys & Emotion",
		SetBaseDir:       "assets/sets",
		AssetBaseDir:     "assets/noto-emoji/png",
		ResolutionFolder: "128",
	}
}

// LoadConfig reads a TOML config file on top of the defaults. A missing file
// is not an error; a malformed one is reported so the caller can log it, but
// the returned config is always usable.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}
