package emojiscape

import (
	"time"
)

// Time is updated once per frame in PreUpdate. Elapsed is the wall-clock
// seconds since startup that the animation layers evaluate their waves at.
type Time struct {
	Start   time.Time
	Now     time.Time
	Dt      time.Duration
	Elapsed float64
}

type TimeModule struct{}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := time.Now()
	cmd.AddResources(&Time{
		Start: now,
		Now:   now,
		Dt:    0,
	})
	app.UseSystem(
		System(timeSystem).
			InStage(PreUpdate),
	)
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Now)
	timeResource.Now = now
	timeResource.Elapsed = now.Sub(timeResource.Start).Seconds()
}
