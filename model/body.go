// Package model defines the shared value types that flow through the
// astrocartography core: the celestial-body enumeration, time scales,
// positions, line geometry, parans, and the geodetic scoring types.
//
// All types here are immutable value types with no behavior beyond small
// accessors — the computation lives in the sibling packages (timescale,
// ephemeris, frames, linegeom, aspectparan, scoring, astrocore).
package model

import "encoding/json"

// Body enumerates the twelve celestial bodies this core computes lines for.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Chiron
	NorthNode
)

// bodyNames is indexed by Body; keep in sync with the const block above.
var bodyNames = [...]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter",
	"Saturn", "Uranus", "Neptune", "Pluto", "Chiron", "NorthNode",
}

// String returns the body's display name, or "Unknown" if out of range.
func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return "Unknown"
	}
	return bodyNames[b]
}

// Bodies lists all twelve bodies in the canonical order used for output
// arrays (planetary_positions, planetary_lines, ...).
var Bodies = [...]Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter,
	Saturn, Uranus, Neptune, Pluto, Chiron, NorthNode,
}

// MarshalJSON renders a Body by its display name rather than its ordinal,
// since the wire format is JSON-shaped structured data, not a raw enum
// index.
func (b Body) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// MarshalText renders a Body by its display name when used as a JSON
// object key (encoding/json map-key encoding goes through
// encoding.TextMarshaler, not MarshalJSON).
func (b Body) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// LineKind enumerates the four angular line kinds.
type LineKind int

const (
	MC LineKind = iota
	IC
	ASC
	DSC
)

func (k LineKind) String() string {
	switch k {
	case MC:
		return "MC"
	case IC:
		return "IC"
	case ASC:
		return "ASC"
	case DSC:
		return "DSC"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders a LineKind by its display name.
func (k LineKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
