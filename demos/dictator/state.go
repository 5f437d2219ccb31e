package main

// Field is one of the six rocket subsystems the dictator must develop.
type Field int

const (
	Guidance Field = iota
	Computer
	Sensors
	RocketFuel
	Control
	Propulsion
	numFields
)

var fieldNames = [numFields]string{
	Guidance:   "guidance",
	Computer:   "computer",
	Sensors:    "sensors",
	RocketFuel: "rocket fuel",
	Control:    "control",
	Propulsion: "propulsion",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown"
	}
	return fieldNames[f]
}

// CardKind distinguishes development cards from public works.
type CardKind int

const (
	Development CardKind = iota
	PublicWork
)

// CardInfo is the rules-side description of a card, independent of how it
// is drawn.
type CardInfo struct {
	Text   string
	Kind   CardKind
	Field  Field // development cards only
	Effect int   // development points, or unrest removed by a public work
	Unrest int   // unrest added when played
}

const (
	startUnrest      = 20
	maxUnrest        = 100
	fieldRequirement = 20
)

// GameState holds everything a restart resets.
type GameState struct {
	Unrest       int
	MaxUnrest    int
	Development  [numFields]int
	Requirements [numFields]int
	Over         bool
}

// NewGameState returns a state ready for a fresh game.
func NewGameState() *GameState {
	s := &GameState{}
	s.Reset()
	return s
}

// Reset restores the starting values.
func (s *GameState) Reset() {
	*s = GameState{Unrest: startUnrest, MaxUnrest: maxUnrest}
	for i := range s.Requirements {
		s.Requirements[i] = fieldRequirement
	}
}

// Apply plays a card. The card's unrest is always added; a public work then
// removes its effect value from unrest.
func (s *GameState) Apply(c CardInfo) {
	s.Unrest += c.Unrest
	switch c.Kind {
	case Development:
		s.Development[c.Field] += c.Effect
	case PublicWork:
		s.Unrest -= c.Effect
	}
}

// Check ends the game once unrest reaches its maximum. It runs after every
// tick.
func (s *GameState) Check() {
	if s.Unrest >= s.MaxUnrest {
		s.Over = true
	}
}

// Met reports whether a field has reached its requirement.
func (s *GameState) Met(f Field) bool {
	return s.Development[f] >= s.Requirements[f]
}

// UnrestRatio returns unrest as a fraction of the maximum, clamped to [0, 1].
func (s *GameState) UnrestRatio() float64 {
	r := float64(s.Unrest) / float64(s.MaxUnrest)
	return min(max(r, 0), 1)
}
