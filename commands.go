package emojiscape

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

// AddEntity buffers the entity; it becomes queryable after the next flush
// (end of the current stage at the latest).
func (cmd *Commands) AddEntity(components ...any) EntityId {
	eid := cmd.app.store.nextEntityId()
	cmd.app.pendingAdditions = append(cmd.app.pendingAdditions, pendingAdd{
		eid:        eid,
		components: components,
	})
	return eid
}

func (cmd *Commands) RemoveEntity(entityId EntityId) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, entityId)
}

// Quit requests shutdown; the frame loop exits after the current frame.
func (cmd *Commands) Quit() {
	cmd.app.quit()
}
