// Package ecs provides ECS adapters for marquee's carousel events.
//
// The primary adapter is [NewDonburiSink], which bridges carousel lifecycle
// events (drag start, release, settle, index change) into a [Donburi] world
// as typed events. Subscribe to [CarouselEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	carousel.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
