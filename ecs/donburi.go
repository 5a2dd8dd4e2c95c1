package ecs

import (
	"github.com/phanxgames/marquee"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CarouselEventType is the Donburi event type for carousel events.
var CarouselEventType = events.NewEventType[marquee.CarouselEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on CarouselEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) marquee.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event marquee.CarouselEvent) {
	CarouselEventType.Publish(s.world, event)
}
