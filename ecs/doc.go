// Package ecs publishes eyekit editor activity into a [Donburi] world.
//
// Every [eyekit.EditEvent] names the editor it came from by side and part
// (for example "left/iris"), so one subscriber can watch both eyes and route
// on [eyekit.EditEvent.Key]. Events queue inside the world until
// ProcessEvents runs; call it once per tick after Studio.Update so a whole
// frame of edits is delivered together.
//
// A sink can be narrowed to the event types a system cares about. An undo
// history, for instance, only needs commits and direct edits:
//
//	sink := ecs.NewDonburiSink(world, eyekit.EventCommit, eyekit.EventEdit)
//	studio.Editors().SetEventSink(sink)
//	ecs.EditEventType.Subscribe(world, func(w donburi.World, e eyekit.EditEvent) {
//		history.Push(e.Key, studio.Config())
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
