package emojiscape

// Effect is the single post-processing pass applied to the rendered frame.
type Effect int

const (
	EffectNone Effect = iota
	EffectGrayscale
	EffectSepia
)

func (e Effect) String() string {
	switch e {
	case EffectGrayscale:
		return "grayscale"
	case EffectSepia:
		return "sepia"
	default:
		return "none"
	}
}

// PostFx holds the post-processing toggles. Bloom and Afterimage are
// accepted but inert: the key handlers flip them and log, nothing reads
// them.
type PostFx struct {
	Grayscale   bool
	Sepia       bool
	SepiaAmount float32

	Bloom      bool
	Afterimage bool
}

func NewPostFx() *PostFx {
	return &PostFx{SepiaAmount: 1.0}
}

// Resolve picks the effect for this frame. Sepia takes priority when both
// filters are on; turning sepia off again uncovers grayscale.
func (p *PostFx) Resolve() Effect {
	if p.Sepia {
		return EffectSepia
	}
	if p.Grayscale {
		return EffectGrayscale
	}
	return EffectNone
}

// AdjustSepia nudges the sepia intensity, clamped to [0,1].
func (p *PostFx) AdjustSepia(delta float32) {
	p.SepiaAmount += delta
	if p.SepiaAmount < 0 {
		p.SepiaAmount = 0
	}
	if p.SepiaAmount > 1 {
		p.SepiaAmount = 1
	}
}

type PostFxModule struct{}

func (PostFxModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewPostFx())
}
