// Package doubleoption provides DoubleOption[T, U], an optional value that,
// when present, holds one of two payload types: First(T), Second(U) or Empty.
// Empty is the zero value.
//
// - First/Second/Empty: construct a DoubleOption
// - IsFirst/IsSecond/IsEmpty/IsFirstAnd/IsSecondAnd: query the active variant
// - First()/Second(), UnwrapFirstOr/UnwrapSecondOr: extract a payload
// - AsRef/AsMut, Take: reference views and whole-value replacement
// - Flip, MapFirst/MapSecond/Map: reshape the payloads
// - Clone/CloneFrom, Equal/Compare, String: structural support
package doubleoption
