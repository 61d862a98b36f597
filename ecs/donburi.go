package ecs

import (
	"github.com/phanxgames/eyekit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditEventType carries eyekit edit events through a Donburi world.
var EditEventType = events.NewEventType[eyekit.EditEvent]()

type donburiSink struct {
	world donburi.World
	// only is a bitmask of accepted event types; zero accepts all.
	only uint32
}

// NewDonburiSink returns an EventSink that publishes to EditEventType in
// world. With no types every event is published; otherwise only the listed
// ones are.
func NewDonburiSink(world donburi.World, types ...eyekit.EditEventType) eyekit.EventSink {
	s := &donburiSink{world: world}
	for _, t := range types {
		s.only |= 1 << t
	}
	return s
}

func (s *donburiSink) EmitEvent(event eyekit.EditEvent) {
	if s.only != 0 && s.only&(1<<event.Type) == 0 {
		return
	}
	EditEventType.Publish(s.world, event)
}
