package ecs

// UpdateFrame is handed to every system executed during one Scheduler.Once call.
type UpdateFrame struct {
	Tick      int
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(tick int, dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Tick:      tick,
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
