// Package erroroption provides ErrorOption[T, E], a fusion of an optional
// value and a success/failure result: Value(T), Empty or Error(E). Value is
// the primary path, Empty means "nothing, and that is fine", and Error is a
// distinct failure channel.
//
// Highlights:
// - Value/Empty/Error: construct an ErrorOption; the zero value is Empty
// - FromOption/FromResult/FromResultOption/FromTuple/FromPtrTuple: build from other shapes
// - AsOption/AsResult/Result/Err, ValueOr/ValueOrDefault/ValueOrElse: convert to urt containers
// - Unwrap*/Expect*: extract a payload, panicking on the wrong variant
// - Map/MapOr/MapOrElse/MapOrError/MapError, Inspect/InspectErr: transform or observe
// - And/AndThen/Or/OrElse/Xor, Filter*: boolean-style combinators
// - Insert/GetOrInsert*/Take/Replace: whole-value replacement in place
// - Zip*/Unzip: pair two ErrorOptions
// - Iter/IterMut/IntoIter/All: iterate over the Value payload, at most once
//
// Note that Or, OrElse, Filter and the Zip family treat Empty and Error
// alike and drop the error payload. Switch swaps the Value and Error roles;
// since the type is biased toward Value, prefer double.Double when neither
// side is primary.
package erroroption
