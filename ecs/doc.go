// Package ecs provides ECS adapters for vroom's engine event hook.
//
// The primary adapter is [NewDonburiStore], which bridges vroom engine
// events into a [Donburi] world. Systems that care about one kind subscribe
// to [RegisteredEventType], [DeletedEventType] or [ClickedEventType];
// [EngineEventType] receives all of them as a [vroom.Event].
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEventSink(store)
//	ecs.DeletedEventType.Subscribe(world, func(w donburi.World, d ecs.Deleted) {
//		// release resources held for d.ID
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
