package emojiscape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	frames int
}

type tickerModule struct {
	stopAfter int
}

func (m tickerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&counter{})
	app.UseSystem(
		System(func(c *counter, cmd *Commands) {
			c.frames++
			if c.frames >= m.stopAfter {
				cmd.Quit()
			}
		}).InStage(Update),
	)
}

func TestRunStopsOnQuit(t *testing.T) {
	app := NewAppBuilder().UseModule(tickerModule{stopAfter: 3}).Build()
	app.Run()

	c := app.resources[componentTypeOf[counter]()].(*counter)
	assert.Equal(t, 3, c.frames)
}

func TestSystemResourceInjection(t *testing.T) {
	app := NewAppBuilder().Build()
	app.Commands().AddResources(&counter{frames: 7})

	seen := 0
	app.UseSystem(System(func(c *counter) { seen = c.frames }).InStage(Update))
	app.RunFrame()

	assert.Equal(t, 7, seen)
}

func TestUnresolvableDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	app.UseSystem(System(func(c *counter) {}).InStage(Update))

	assert.Panics(t, func() { app.RunFrame() })
}

func TestDuplicateResourcePanics(t *testing.T) {
	app := NewAppBuilder().Build()
	app.Commands().AddResources(&counter{})

	assert.Panics(t, func() { app.Commands().AddResources(&counter{}) })
}

type probe struct{ value int }

func TestEntitiesFlushBetweenStages(t *testing.T) {
	app := NewAppBuilder().Build()

	app.UseSystem(System(func(cmd *Commands) {
		cmd.AddEntity(&probe{value: 42})
	}).InStage(PreUpdate))

	found := 0
	app.UseSystem(System(func(cmd *Commands) {
		MakeQuery1[probe](cmd).Map(func(eid EntityId, p *probe) bool {
			found = p.value
			return true
		})
	}).InStage(Update))

	app.RunFrame()
	assert.Equal(t, 42, found)
}

func TestRemovalsFlushBeforeAdditions(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	eid := cmd.AddEntity(&probe{value: 1})
	app.FlushCommands()

	cmd.RemoveEntity(eid)
	cmd.AddEntity(&probe{value: 2})
	app.FlushCommands()

	var values []int
	MakeQuery1[probe](cmd).Map(func(eid EntityId, p *probe) bool {
		values = append(values, p.value)
		return true
	})
	require.Equal(t, []int{2}, values)
}

func TestQueryVisitsInSpawnOrder(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	for i := 0; i < 10; i++ {
		cmd.AddEntity(&probe{value: i})
	}
	app.FlushCommands()

	var order []int
	MakeQuery1[probe](cmd).Map(func(eid EntityId, p *probe) bool {
		order = append(order, p.value)
		return true
	})
	require.Len(t, order, 10)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestQueryEarlyExit(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()
	for i := 0; i < 5; i++ {
		cmd.AddEntity(&probe{value: i})
	}
	app.FlushCommands()

	visited := 0
	MakeQuery1[probe](cmd).Map(func(eid EntityId, p *probe) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}
