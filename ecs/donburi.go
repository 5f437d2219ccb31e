package ecs

import (
	"github.com/phanxgames/vroom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Registered is published when an entity enters the registry.
type Registered struct {
	ID vroom.ID
}

// Deleted is published when a live entity is removed.
type Deleted struct {
	ID vroom.ID
}

// Clicked is published when the mouse click flag is raised. Pos is in
// logical screen coordinates.
type Clicked struct {
	Pos vroom.Vec2
}

var (
	// EngineEventType carries every engine event unchanged.
	EngineEventType = events.NewEventType[vroom.Event]()

	RegisteredEventType = events.NewEventType[Registered]()
	DeletedEventType    = events.NewEventType[Deleted]()
	ClickedEventType    = events.NewEventType[Clicked]()
)

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns an EventSink that publishes each engine event
// twice into world: once on EngineEventType and once on the typed event
// matching its kind. Nothing is delivered until the world's events are
// processed.
func NewDonburiStore(world donburi.World) vroom.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(ev vroom.Event) {
	EngineEventType.Publish(s.world, ev)
	switch ev.Type {
	case vroom.EventRegistered:
		RegisteredEventType.Publish(s.world, Registered{ID: ev.ID})
	case vroom.EventDeleted:
		DeletedEventType.Publish(s.world, Deleted{ID: ev.ID})
	case vroom.EventClick:
		ClickedEventType.Publish(s.world, Clicked{Pos: ev.Pos})
	}
}
