package emojiscape

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WaveShape maps an angle to an animation factor. Sine swings in [-1,1],
// Pulse bounces in [0,1], Ramp eases smoothly through [0,1].
type WaveShape int

const (
	WaveSine WaveShape = iota
	WavePulse
	WaveRamp
)

func (w WaveShape) Eval(x float64) float64 {
	s := math.Sin(x)
	switch w {
	case WavePulse:
		return math.Abs(s)
	case WaveRamp:
		return (s + 1) / 2
	default:
		return s
	}
}

// NodeMode is the per-sprite wave animation applied on top of the layout.
type NodeMode int

const (
	NodeNone NodeMode = iota
	NodeWavePosition
	NodeWaveZoom
	NodeWaveRotation
)

func (m NodeMode) String() string {
	switch m {
	case NodeNone:
		return "none"
	case NodeWavePosition:
		return "wave-position"
	case NodeWaveZoom:
		return "wave-zoom"
	case NodeWaveRotation:
		return "wave-rotation"
	default:
		return "unknown"
	}
}

// Next cycles none -> wave-position -> wave-zoom -> wave-rotation -> none.
func (m NodeMode) Next() NodeMode {
	if m >= NodeWaveRotation {
		return NodeNone
	}
	return m + 1
}

// AnimationConfig holds the tunables of both animation layers. It is a plain
// resource; the key handlers flip its fields directly.
type AnimationConfig struct {
	IdleRotationEnabled   bool
	IdleRotationShape     WaveShape
	IdleRotationDegPerSec float64

	IdleZoomEnabled     bool
	IdleZoomShape       WaveShape
	IdleZoomAmplitude   float64
	IdleZoomSpeedFactor float64

	NodeEnabled   bool
	NodeMode      NodeMode
	NodeAmplitude float64
	NodeFrequency float64
	NodeSpeed     float64
}

func DefaultAnimationConfig() *AnimationConfig {
	return &AnimationConfig{
		IdleRotationEnabled:   true,
		IdleRotationShape:     WaveSine,
		IdleRotationDegPerSec: 30,

		IdleZoomEnabled:     true,
		IdleZoomShape:       WaveSine,
		IdleZoomAmplitude:   0.1,
		IdleZoomSpeedFactor: 2.0,

		NodeEnabled:   true,
		NodeMode:      NodeWavePosition,
		NodeAmplitude: 0.5,
		NodeFrequency: 1.0,
		NodeSpeed:     1.0,
	}
}

type AnimationModule struct{}

func (AnimationModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(DefaultAnimationConfig())
	app.UseSystem(
		System(animateSpritesSystem).
			InStage(Update),
	)
}

// animateSpritesSystem recomputes every visible sprite's render state from
// its base state. The node layer writes first, the idle layer second, so idle
// zoom wins over node zoom when both touch scale. Spin is the exception to
// the recompute rule: both layers add to it and it carries across frames.
// Hidden sprites are skipped wholesale, they keep whatever state they had.
func animateSpritesSystem(cfg *AnimationConfig, time *Time, cmd *Commands) {
	t := time.Elapsed
	dt := time.Dt.Seconds()

	MakeQuery3[SpriteComponent, BaseStateComponent, RenderStateComponent](cmd).Map(
		func(eid EntityId, sprite *SpriteComponent, base *BaseStateComponent, render *RenderStateComponent) bool {
			if !sprite.Visible {
				return true
			}
			i := float64(sprite.Index)

			render.Position = base.Position
			render.Orientation = base.Orientation
			render.Scale = base.Scale

			if cfg.NodeEnabled && cfg.NodeMode != NodeNone {
				wave := math.Sin(i*cfg.NodeFrequency+t*cfg.NodeSpeed*2+base.Phase) * cfg.NodeAmplitude
				switch cfg.NodeMode {
				case NodeWavePosition:
					wave2 := math.Cos(i*cfg.NodeFrequency*0.7+t*cfg.NodeSpeed*1.5+base.Phase) * cfg.NodeAmplitude
					render.Position = base.Position.Add(mgl32.Vec3{float32(wave), float32(wave2), 0})
				case NodeWaveZoom:
					s := float64(base.ScaleVal) * math.Max(0.1, 1+wave*0.5)
					z := float32(s)
					if sprite.Billboard {
						// billboards have no depth to zoom
						z = base.Scale.Z()
					}
					render.Scale = mgl32.Vec3{float32(s), float32(s), z}
				case NodeWaveRotation:
					render.Spin += float32(wave * 30 * dt)
				}
			}

			if cfg.IdleRotationEnabled {
				// the rotation wave runs at the zoom speed factor
				factor := cfg.IdleRotationShape.Eval(t*cfg.IdleZoomSpeedFactor + base.Phase)
				render.Spin += float32(cfg.IdleRotationDegPerSec * factor * dt)
			}

			if cfg.IdleZoomEnabled {
				factor := cfg.IdleZoomShape.Eval(t*cfg.IdleZoomSpeedFactor*1.5 + base.Phase)
				s := float64(base.ScaleVal) * (1 + cfg.IdleZoomAmplitude*factor)
				z := float32(s)
				if sprite.Billboard {
					z = render.Scale.Z()
				}
				render.Scale = mgl32.Vec3{float32(s), float32(s), z}
			}
			return true
		})
}
