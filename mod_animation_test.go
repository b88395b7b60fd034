package emojiscape

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveShapeEval(t *testing.T) {
	assert.InDelta(t, 1, WaveSine.Eval(math.Pi/2), 1e-9)
	assert.InDelta(t, -1, WaveSine.Eval(-math.Pi/2), 1e-9)
	assert.InDelta(t, 1, WavePulse.Eval(-math.Pi/2), 1e-9)
	assert.InDelta(t, 0, WaveRamp.Eval(-math.Pi/2), 1e-9)
	assert.InDelta(t, 1, WaveRamp.Eval(math.Pi/2), 1e-9)
}

func TestNodeModeCycle(t *testing.T) {
	assert.Equal(t, NodeWavePosition, NodeNone.Next())
	assert.Equal(t, NodeWaveZoom, NodeWavePosition.Next())
	assert.Equal(t, NodeWaveRotation, NodeWaveZoom.Next())
	assert.Equal(t, NodeNone, NodeWaveRotation.Next())
}

func nodeOnlyConfig(mode NodeMode) *AnimationConfig {
	return &AnimationConfig{
		NodeEnabled:   true,
		NodeMode:      mode,
		NodeAmplitude: 0.5,
		NodeFrequency: 1.0,
		NodeSpeed:     1.0,

		IdleZoomSpeedFactor: 2.0,
	}
}

func setPhases(cmd *Commands, phase float64) {
	MakeQuery1[BaseStateComponent](cmd).Map(func(eid EntityId, base *BaseStateComponent) bool {
		base.Phase = phase
		return true
	})
}

func TestWavePositionOffsetsFromBase(t *testing.T) {
	_, cmd := newSpriteTestApp(t, 3)
	cfg := nodeOnlyConfig(NodeWavePosition)
	const phase = 0.3
	setPhases(cmd, phase)
	clock := &Time{Elapsed: 2.0, Dt: 16 * time.Millisecond}

	animateSpritesSystem(cfg, clock, cmd)

	MakeQuery3[SpriteComponent, BaseStateComponent, RenderStateComponent](cmd).Map(
		func(eid EntityId, sprite *SpriteComponent, base *BaseStateComponent, render *RenderStateComponent) bool {
			i := float64(sprite.Index)
			wave := math.Sin(i*cfg.NodeFrequency+clock.Elapsed*cfg.NodeSpeed*2+phase) * cfg.NodeAmplitude
			wave2 := math.Cos(i*cfg.NodeFrequency*0.7+clock.Elapsed*cfg.NodeSpeed*1.5+phase) * cfg.NodeAmplitude

			assert.InDelta(t, float64(base.Position.X())+wave, float64(render.Position.X()), 1e-5)
			assert.InDelta(t, float64(base.Position.Y())+wave2, float64(render.Position.Y()), 1e-5)
			assert.Equal(t, base.Position.Z(), render.Position.Z())
			assert.Equal(t, base.Scale, render.Scale)
			return true
		})
}

func TestWaveZoomClampsAtScaleFloor(t *testing.T) {
	_, cmd := newSpriteTestApp(t, 1)
	cfg := nodeOnlyConfig(NodeWaveZoom)
	cfg.NodeAmplitude = 4 // drives 1+wave*0.5 far below zero
	setPhases(cmd, -math.Pi/2)
	clock := &Time{Elapsed: 0, Dt: 16 * time.Millisecond}

	MakeQuery1[BaseStateComponent](cmd).Map(func(eid EntityId, base *BaseStateComponent) bool {
		base.ScaleVal = 2
		base.Scale = mgl32.Vec3{2, 2, 2}
		return true
	})

	animateSpritesSystem(cfg, clock, cmd)

	MakeQuery1[RenderStateComponent](cmd).Map(func(eid EntityId, render *RenderStateComponent) bool {
		assert.InDelta(t, 0.2, float64(render.Scale.X()), 1e-5)
		assert.InDelta(t, 0.2, float64(render.Scale.Y()), 1e-5)
		assert.InDelta(t, 2, float64(render.Scale.Z()), 1e-5, "billboard depth stays at base scale")
		return true
	})
}

func TestZoomScalesDepthOnSurfaceSprites(t *testing.T) {
	_, cmd := newSpriteTestApp(t, 2)
	cfg := nodeOnlyConfig(NodeWaveZoom)
	cfg.NodeAmplitude = 4
	cfg.NodeFrequency = 0 // same wave for every index
	setPhases(cmd, -math.Pi/2)
	clock := &Time{Elapsed: 0, Dt: 16 * time.Millisecond}

	MakeQuery2[SpriteComponent, BaseStateComponent](cmd).Map(
		func(eid EntityId, sprite *SpriteComponent, base *BaseStateComponent) bool {
			sprite.Billboard = sprite.Index == 0
			base.ScaleVal = 2
			base.Scale = mgl32.Vec3{2, 2, 2}
			return true
		})

	animateSpritesSystem(cfg, clock, cmd)

	MakeQuery2[SpriteComponent, RenderStateComponent](cmd).Map(
		func(eid EntityId, sprite *SpriteComponent, render *RenderStateComponent) bool {
			assert.InDelta(t, 0.2, float64(render.Scale.X()), 1e-5)
			if sprite.Billboard {
				assert.InDelta(t, 2, float64(render.Scale.Z()), 1e-5, "billboards keep base depth")
			} else {
				assert.InDelta(t, 0.2, float64(render.Scale.Z()), 1e-5, "surface sprites zoom in depth too")
			}
			return true
		})
}

func TestIdleZoomScalesDepthOnSurfaceSprites(t *testing.T) {
	_, cmd := newSpriteTestApp(t, 1)
	cfg := &AnimationConfig{
		IdleZoomEnabled:     true,
		IdleZoomShape:       WaveSine,
		IdleZoomAmplitude:   0.1,
		IdleZoomSpeedFactor: 2.0,
	}
	const phase = 0.4
	setPhases(cmd, phase)
	clock := &Time{Elapsed: 3.0, Dt: 16 * time.Millisecond}

	MakeQuery1[SpriteComponent](cmd).Map(func(eid EntityId, sprite *SpriteComponent) bool {
		sprite.Billboard = false
		return true
	})

	animateSpritesSystem(cfg, clock, cmd)

	expected := 1 + cfg.IdleZoomAmplitude*math.Sin(clock.Elapsed*cfg.IdleZoomSpeedFactor*1.5+phase)
	MakeQuery1[RenderStateComponent](cmd).Map(func(eid EntityId, render *RenderStateComponent) bool {
		assert.InDelta(t, expected, float64(render.Scale.X()), 1e-5)
		assert.InDelta(t, expected, float64(render.Scale.Z()), 1e-5)
		return true
	})
}

func TestWaveRotationAccumulatesSpin(t *testing.T) {
	_, cmd := newSpriteTestApp(t, 1)
	cfg := nodeOnlyConfig(NodeWaveRotation)
	const phase = 0.7
	setPhases(cmd, phase)
	clock := &Time{Elapsed: 1.0, Dt: 100 * time.Millisecond}

	animateSpritesSystem(cfg, clock, cmd)
	animateSpritesSystem(cfg, clock, cmd)

	wave := math.Sin(clock.Elapsed*cfg.NodeSpeed*2+phase) * cfg.NodeAmplitude
	expected := 2 * wave * 30 * clock.Dt.Seconds()

	MakeQuery1[RenderStateComponent](cmd).Map(func(eid EntityId, render *RenderStateComponent) bool {
		assert.InDelta(t, expected, float64(render.Spin), 1e-5)
		return true
	})
}

func TestIdleZoomOverridesNodeZoom(t *testing.T) {
	_, cmd := newSpriteTestApp(t, 1)
	cfg := nodeOnlyConfig(NodeWaveZoom)
	cfg.IdleZoomEnabled = true
	cfg.IdleZoomShape = WaveSine
	cfg.IdleZoomAmplitude = 0.1
	const phase = 0.4
	setPhases(cmd, phase)
	clock := &Time{Elapsed: 3.0, Dt: 16 * time.Millisecond}

	animateSpritesSystem(cfg, clock, cmd)

	factor := math.Sin(clock.Elapsed*cfg.IdleZoomSpeedFactor*1.5 + phase)
	expected := 1 * (1 + cfg.IdleZoomAmplitude*factor)

	MakeQuery1[RenderStateComponent](cmd).Map(func(eid EntityId, render *RenderStateComponent) bool {
		assert.InDelta(t, expected, float64(render.Scale.X()), 1e-5)
		assert.InDelta(t, expected, float64(render.Scale.Y()), 1e-5)
		return true
	})
}

func TestIdleRotationRunsAtZoomSpeedFactor(t *testing.T) {
	_, cmd := newSpriteTestApp(t, 1)
	cfg := &AnimationConfig{
		IdleRotationEnabled:   true,
		IdleRotationShape:     WaveSine,
		IdleRotationDegPerSec: 30,
		IdleZoomSpeedFactor:   2.0,
	}
	const phase = 0.4
	setPhases(cmd, phase)
	clock := &Time{Elapsed: 1.25, Dt: 100 * time.Millisecond}

	animateSpritesSystem(cfg, clock, cmd)

	expected := 30 * math.Sin(clock.Elapsed*2.0+phase) * clock.Dt.Seconds()
	MakeQuery1[RenderStateComponent](cmd).Map(func(eid EntityId, render *RenderStateComponent) bool {
		assert.InDelta(t, expected, float64(render.Spin), 1e-5)
		return true
	})
}

func TestDisabledLayersLeaveBaseTransform(t *testing.T) {
	_, cmd := newSpriteTestApp(t, 2)
	cfg := &AnimationConfig{IdleZoomSpeedFactor: 2.0}
	setPhases(cmd, 1.1)
	clock := &Time{Elapsed: 10, Dt: 16 * time.Millisecond}

	animateSpritesSystem(cfg, clock, cmd)

	MakeQuery2[BaseStateComponent, RenderStateComponent](cmd).Map(
		func(eid EntityId, base *BaseStateComponent, render *RenderStateComponent) bool {
			assert.Equal(t, base.Position, render.Position)
			assert.Equal(t, base.Orientation, render.Orientation)
			assert.Equal(t, base.Scale, render.Scale)
			assert.Zero(t, render.Spin)
			return true
		})
}

func TestHiddenSpritesAreSkipped(t *testing.T) {
	_, cmd := newSpriteTestApp(t, 2)
	cfg := DefaultAnimationConfig()
	clock := &Time{Elapsed: 5.0, Dt: 16 * time.Millisecond}

	sentinel := mgl32.Vec3{9, 9, 9}
	MakeQuery2[SpriteComponent, RenderStateComponent](cmd).Map(
		func(eid EntityId, sprite *SpriteComponent, render *RenderStateComponent) bool {
			if sprite.Index == 1 {
				sprite.Visible = false
				render.Position = sentinel
			}
			return true
		})

	animateSpritesSystem(cfg, clock, cmd)

	MakeQuery2[SpriteComponent, RenderStateComponent](cmd).Map(
		func(eid EntityId, sprite *SpriteComponent, render *RenderStateComponent) bool {
			if sprite.Index == 1 {
				assert.Equal(t, sentinel, render.Position)
			} else {
				assert.NotEqual(t, sentinel, render.Position)
			}
			return true
		})
}

func TestDefaultAnimationConfig(t *testing.T) {
	cfg := DefaultAnimationConfig()
	require.True(t, cfg.IdleRotationEnabled)
	require.True(t, cfg.IdleZoomEnabled)
	require.True(t, cfg.NodeEnabled)
	assert.Equal(t, NodeWavePosition, cfg.NodeMode)
	assert.Equal(t, WaveSine, cfg.IdleRotationShape)
	assert.InDelta(t, 2.0, cfg.IdleZoomSpeedFactor, 1e-9)
}
