package emojiscape

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// An emoji set file is JSON in one of two shapes: an object mapping group
// names to emoji lists (a group value may also be a single ";"-separated
// string), or a flat list of emojis. Every failure mode degrades to an empty
// list; the caller substitutes a placeholder sprite.

// LoadEmojiSet reads the set file and returns the emojis of the requested
// group (or the whole list for flat files).
func LoadEmojiSet(path string, group string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read emoji set %s: %w", path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse emoji set %s: %w", path, err)
	}

	switch v := raw.(type) {
	case map[string]any:
		return groupEmojis(v, group), nil
	case []any:
		return stringList(v), nil
	default:
		return nil, fmt.Errorf("emoji set %s: unsupported JSON shape", path)
	}
}

func groupEmojis(groups map[string]any, group string) []string {
	switch entry := groups[group].(type) {
	case []any:
		return stringList(entry)
	case string:
		var emojis []string
		for _, e := range strings.Split(entry, ";") {
			if e = strings.TrimSpace(e); e != "" {
				emojis = append(emojis, e)
			}
		}
		return emojis
	default:
		return nil
	}
}

func stringList(items []any) []string {
	var emojis []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			emojis = append(emojis, s)
		}
	}
	return emojis
}

// EmojiFilename derives the Noto-style PNG filename for one emoji: the
// lowercase hex code points of its runes joined by underscores, e.g.
// "😀" -> "emoji_u1f600.png".
func EmojiFilename(emoji string) string {
	var parts []string
	for _, r := range emoji {
		parts = append(parts, strconv.FormatInt(int64(r), 16))
	}
	return "emoji_u" + strings.Join(parts, "_") + ".png"
}

// TexturePaths maps n sprite slots onto the available emoji files, cycling
// with wraparound when there are fewer emojis than slots. An empty emoji
// list yields nil; the caller falls back to a single placeholder sprite.
func TexturePaths(baseDir, resolutionFolder string, emojis []string, n int) []string {
	if len(emojis) == 0 || n <= 0 {
		return nil
	}

	paths := make([]string, n)
	for i := 0; i < n; i++ {
		filename := EmojiFilename(emojis[i%len(emojis)])
		paths[i] = filepath.Join(baseDir, resolutionFolder, filename)
	}
	return paths
}
