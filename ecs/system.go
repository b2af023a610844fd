package ecs

// System is one step of a frame. Systems may declare Query and Singleton fields;
// the Scheduler binds them to its Storage on Register and refreshes each Query
// right before the system executes.
type System interface {
	Execute(frame *UpdateFrame)
}
