// Package winstore implements registry.Store over the live host registry
// (Windows only).
//
// Every method is a thin wrapper around the host's handle-based
// primitives; interpretation of value payloads happens above this package
// in value and registry. Reads go through a 2-byte aligned buffer so text
// payloads can be reinterpreted as UTF-16 code units in place.
package winstore
