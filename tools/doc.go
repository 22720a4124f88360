// Package tools binds the Transend API client to a fixed catalogue of named tools.
//
// Each tool decodes its arguments, performs exactly one client call and
// returns either the client's value unchanged or an error envelope.
// Registry.Call is the only dispatcher, and Outcome is the only place
// where an error is converted to the envelope.
package tools
