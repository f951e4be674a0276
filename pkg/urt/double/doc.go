// Package double provides Double[T, U], a value holding exactly one of two
// payloads with no implied bias between them. It is the unbiased counterpart
// of a success/failure result: neither side is the happy path, and every
// operation available for the First side has a mirror for the Second side.
//
// Highlights:
// - First/Second: construct a Double
// - IsFirst/IsSecond/IsFirstAnd/IsSecondAnd: query the active variant
// - First()/Second(), FirstAsResult/SecondAsResult, FirstOr/SecondOr: convert to urt containers
// - Flip/Switch: swap which side is first
// - UnwrapFirst*/UnwrapSecond*, ExpectFirst/ExpectSecond: extract a payload
// - UnwrapTo/UnwrapInto/UnwrapUnion: merge both sides into one output
// - MapFirst/MapSecond/Map: transform one or both sides
// - Clone/CloneFrom, Equal/Compare, String: structural support
//
// The Unwrap and Expect methods panic when the other variant is held; prefer
// the Or/OrElse/OrDefault/With forms unless that is a bug in the caller.
package double
