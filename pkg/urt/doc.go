// Package urt holds the containers shared by the union packages double,
// doubleoption and erroroption. The unions convert into these types and
// accept them back, so callers can leave the three-state algebra at any point.
//
// Highlights:
// - Some/None: construct Option[T], a present-or-absent value
// - Success/Fail: construct Result[T, E], a success-or-failure value
// - MakePair: the element type produced by the zip family
// - NewBox: an owning pointer payload usable with erroroption.AsDeref
// - Duplicator: describe how a payload is deep-copied by Clone/CloneFrom
// - Into/Deref: capability interfaces used by UnwrapInto and AsDeref
// - PanicMessage: render fatal messages for contract violations
// - ErrUnknownVariant/ErrMalformedDocument/DecodeError: decode failures of the union encoders
// - IsNil/IsCancellationError: error checks shared with the chain package
//
// The chain subpackage builds context-aware recovery policies on top of
// erroroption.ErrorOption.
//
// Build tags:
// - urt_minimal: constrained runtime mode, fatal messages do not render payloads
// - urt_noserde: drop the JSON/YAML encoders of the union packages
package urt
