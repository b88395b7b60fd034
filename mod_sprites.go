package emojiscape

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// SpriteComponent identifies one pooled emoji sprite. Index is the sprite's
// stable slot in the layout order; sprites past the active count are hidden,
// never destroyed.
type SpriteComponent struct {
	Index     int
	Texture   AssetId
	Visible   bool
	Billboard bool
}

// BaseStateComponent is the rest transform assigned by the last layout pass.
// Only the layout-apply path writes it; the animation compositor treats it
// as read-only input. Phase is drawn uniformly from [0,2π) at every layout
// refresh and stays fixed between refreshes, so sprites never pulse in
// lockstep.
type BaseStateComponent struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	ScaleVal    float32
	Scale       mgl32.Vec3
	Phase       float64
}

// RenderStateComponent is the engine-facing transform actually drawn.
// Position and Scale are recomputed from base state every frame; Spin is the
// accumulated rotation (degrees) about the sprite's spin axis and is the one
// piece of animation state that survives across frames.
type RenderStateComponent struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Spin        float32
	Scale       mgl32.Vec3
}

// SpriteField is the demo's arrangement state: which pattern is active, how
// many sprites participate, and the shape parameters of each pattern.
type SpriteField struct {
	Arrangement Arrangement
	ActiveCount int
	Params      LayoutParams

	rng         *rand.Rand
	initialized bool
}

func NewSpriteField(count int, seed int64) *SpriteField {
	return &SpriteField{
		Arrangement: ArrangementSphere,
		ActiveCount: count,
		Params:      DefaultLayoutParams(),
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// SpriteFieldModule spawns the sprite pool from an emoji set at startup and
// applies the initial arrangement.
type SpriteFieldModule struct {
	Count            int
	SetPath          string
	Group            string
	AssetBaseDir     string
	ResolutionFolder string
	Seed             int64
}

func (m SpriteFieldModule) Install(app *App, cmd *Commands) {
	count := m.Count
	if count <= 0 {
		count = 30
	}
	cmd.AddResources(NewSpriteField(count, m.Seed))
	app.UseSystem(
		System(m.spriteFieldInitSystem).
			InStage(PreUpdate),
	)
}

func (m SpriteFieldModule) spriteFieldInitSystem(field *SpriteField, assets *AssetServer, log *Log, cmd *Commands) {
	if field.initialized {
		return
	}
	field.initialized = true

	emojis, err := LoadEmojiSet(m.SetPath, m.Group)
	if err != nil {
		log.Warn("emoji set unavailable, using placeholder", "err", err)
	}

	paths := TexturePaths(m.AssetBaseDir, m.ResolutionFolder, emojis, field.ActiveCount)
	if len(paths) == 0 {
		// no emojis at all: a single visible placeholder sprite
		field.ActiveCount = 1
		paths = []string{""}
	}

	for i, path := range paths {
		texture := assets.PlaceholderTexture()
		if path != "" {
			if id, err := assets.LoadTexture(path); err == nil {
				texture = id
			} else {
				log.Warn("texture missing, using placeholder", "path", path, "err", err)
			}
		}
		cmd.AddEntity(
			&SpriteComponent{Index: i, Texture: texture, Visible: true, Billboard: true},
			&BaseStateComponent{Orientation: mgl32.QuatIdent(), ScaleVal: 1, Scale: mgl32.Vec3{1, 1, 1}},
			&RenderStateComponent{Orientation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}},
		)
	}
	cmd.app.FlushCommands()

	ApplyArrangement(cmd, field, field.Arrangement)
	log.Info("sprite field ready", "sprites", field.ActiveCount, "arrangement", field.Arrangement.String())
}

// ApplyArrangement runs a full layout pass for the given arrangement and
// refreshes every sprite's base state snapshot. The refresh is mandatory:
// the compositor animates relative to base state, so skipping it would leave
// animations anchored to the previous shape. Unknown arrangements are
// ignored.
func ApplyArrangement(cmd *Commands, field *SpriteField, arrangement Arrangement) {
	switch arrangement {
	case ArrangementGrid, ArrangementSwirl, ArrangementTorus, ArrangementSphere:
	default:
		return
	}

	placements := Arrange(arrangement, field.ActiveCount, field.Params)
	field.Arrangement = arrangement

	MakeQuery3[SpriteComponent, BaseStateComponent, RenderStateComponent](cmd).Map(
		func(eid EntityId, sprite *SpriteComponent, base *BaseStateComponent, render *RenderStateComponent) bool {
			if sprite.Index >= len(placements) {
				sprite.Visible = false
				return true
			}
			p := placements[sprite.Index]

			sprite.Visible = true
			sprite.Billboard = p.Billboard

			base.Position = p.Position
			base.Orientation = p.Orientation
			base.ScaleVal = p.Scale
			base.Scale = mgl32.Vec3{p.Scale, p.Scale, p.Scale}
			base.Phase = field.rng.Float64() * 2 * math.Pi

			render.Position = base.Position
			render.Orientation = base.Orientation
			render.Spin = 0
			render.Scale = base.Scale
			return true
		})
}
