package emojiscape

type ControlsModule struct{}

func (ControlsModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(controlsSystem).
			InStage(Update),
	)
}

// controlsSystem maps keys to demo state changes. Every toggle replaces the
// whole value it targets; there is no partial edit that could leave config
// and sprites out of sync.
//
//	1..4        arrangement: grid, swirl, torus, sphere
//	r           idle rotation on/off
//	t           idle zoom on/off
//	n           cycle node animation mode
//	g           grayscale on/off
//	s           sepia on/off
//	s + up/down sepia intensity
//	b, a        bloom / afterimage (accepted, no visual effect)
//	escape      quit
func controlsSystem(input *Input, field *SpriteField, anim *AnimationConfig, fx *PostFx, log *Log, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Quit()
		return
	}

	arrangements := map[int]Arrangement{
		Key1: ArrangementGrid,
		Key2: ArrangementSwirl,
		Key3: ArrangementTorus,
		Key4: ArrangementSphere,
	}
	for key, arrangement := range arrangements {
		// re-pressing the active key re-runs the layout with fresh phases
		if input.JustPressed[key] {
			ApplyArrangement(cmd, field, arrangement)
			log.Info("arrangement changed", "arrangement", arrangement.String())
		}
	}

	if input.JustPressed[KeyR] {
		anim.IdleRotationEnabled = !anim.IdleRotationEnabled
		log.Info("idle rotation", "enabled", anim.IdleRotationEnabled)
	}
	if input.JustPressed[KeyT] {
		anim.IdleZoomEnabled = !anim.IdleZoomEnabled
		log.Info("idle zoom", "enabled", anim.IdleZoomEnabled)
	}
	if input.JustPressed[KeyN] {
		anim.NodeMode = anim.NodeMode.Next()
		log.Info("node animation", "mode", anim.NodeMode.String())
	}

	if input.JustPressed[KeyG] {
		fx.Grayscale = !fx.Grayscale
		log.Info("grayscale", "enabled", fx.Grayscale, "effect", fx.Resolve().String())
	}
	if input.JustPressed[KeyS] {
		fx.Sepia = !fx.Sepia
		log.Info("sepia", "enabled", fx.Sepia, "effect", fx.Resolve().String())
	}
	if input.Pressed[KeyS] {
		if input.JustPressed[KeyUp] {
			fx.AdjustSepia(0.1)
			log.Info("sepia intensity", "amount", fx.SepiaAmount)
		}
		if input.JustPressed[KeyDown] {
			fx.AdjustSepia(-0.1)
			log.Info("sepia intensity", "amount", fx.SepiaAmount)
		}
	}

	if input.JustPressed[KeyB] {
		fx.Bloom = !fx.Bloom
		log.Info("bloom toggled, effect not implemented", "enabled", fx.Bloom)
	}
	if input.JustPressed[KeyA] {
		fx.Afterimage = !fx.Afterimage
		log.Info("afterimage toggled, effect not implemented", "enabled", fx.Afterimage)
	}
}
