package ecs

// System is one stage of the tick pipeline. Query and Singleton fields are
// bound by the Scheduler on registration; any other field is state that
// persists between ticks.
//
// Returning an error aborts the tick. Systems report domain outcomes through
// components or singletons and reserve errors for broken invariants.
type System interface {
	Execute(frame *UpdateFrame) error
}
