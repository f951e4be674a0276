// Package wire implements the externally tagged document shape shared by the
// union encoders: a single-key object {"Tag": payload} for variants with a
// payload and the bare tag string for unit variants.
//
// - Encode: build the value handed to the JSON or YAML encoder
// - FromJSON/FromYAML: split a document into its tag and an undecoded payload
package wire
