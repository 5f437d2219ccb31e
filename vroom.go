package vroom

import "math"

// DefaultMaxLayers is the number of draw layers when Config.MaxLayers is unset.
const DefaultMaxLayers = 6

// ID identifies a registered entity. IDs are random, never sequential.
type ID string

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v with both components multiplied by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Size is a width/height pair in logical units.
type Size struct {
	Width, Height float64
}

// Scale returns s with both extents multiplied by f.
func (s Size) Scale(f float64) Size {
	return Size{s.Width * f, s.Height * f}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Axis restricts which directions a following camera tracks.
type Axis uint8

const (
	AxisBoth       Axis = iota // track horizontal and vertical movement
	AxisHorizontal             // track horizontal movement only
	AxisVertical               // track vertical movement only
)

func (a Axis) horizontal() bool { return a == AxisBoth || a == AxisHorizontal }
func (a Axis) vertical() bool   { return a == AxisBoth || a == AxisVertical }

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "both"
	}
}

// TextAlign controls horizontal alignment for MultilineText.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // x is the left edge (default)
	TextAlignCenter                  // x is the horizontal center
	TextAlignRight                   // x is the right edge
)

// EventType identifies an engine event forwarded to an EventSink.
type EventType uint8

const (
	EventRegistered EventType = iota // an entity was inserted into the registry
	EventDeleted                     // a live entity was removed
	EventClick                       // the mouse one-shot click flag was raised
)

// Event carries engine event data for an optional EventSink (see SetEventSink).
type Event struct {
	Type EventType
	ID   ID   // entity id for EventRegistered / EventDeleted
	Pos  Vec2 // logical mouse position for EventClick
}

// EventSink receives engine events. It is the hook used by the ECS bridge.
type EventSink interface {
	EmitEvent(event Event)
}
