package emojiscape

import _ "embed"

//go:embed shaders/sprite.wgsl
var spriteShaderCode string

//go:embed shaders/postfx.wgsl
var postfxShaderCode string
