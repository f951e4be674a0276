// Package chain provides a fluent wrapper around ErrorOption[T, error]
// for building synchronous recovery policies step by step.
//
// Each step runs only on a Value. Empty and Error flow through untouched
// until a recovery step (Or, IfEmpty, Recover) or Finally looks at them.
// A step that finds its context done turns a Value into Error(ctx.Err()).
//
// Key operations:
// - Start/FromValue/FromTry: begin a chain from an ErrorOption, a value or a (value, error) pair
// - Then: switch to a new ErrorOption[U, error] via a function
// - ThenTry: call a function (U, error) and convert error to Error
// - ThenLookup: call a function (*U, error) where nil means Empty
// - Map: transform the Value (T -> U)
// - Validate/ValidateAll: turn a rejected Value into Error, stopping at the first failure
// - Ensure/EnsureError: run side effects without changing the content
// - Or/IfEmpty/Recover: replace Empty and/or Error with an alternative;
//   a cancellation error is never replaced
// - Finally: collapse the chain into a final value via handlers
package chain
