// Package sim implements the runner simulation: player physics, scrolling level
// entities, overlap resolution and the reset-on-terminal-event state machine.
//
// All mutable state lives in a World aggregate owned by an Engine. One call to
// Engine.Tick advances exactly one frame:
//
//	Step    - gravity, spawn (endless), scroll, cull off-screen entities
//	Resolve - obstacles, pickups, portals, finish, in that order
//	restart - on game over or level complete, notify and rebuild the level
//
// Physics is tick based: one unit of gravity and velocity per frame, independent
// of wall-clock time. The package has no Bubble Tea dependency.
package sim
