// Package ingest implements the TCP listener through which samples enter a
// midline node, and a small client for writing to it.
//
// The wire format is a plain text line protocol, one sample per line:
//
//  <series>:<value>\n
//
// where <series> is a series name and <value> a base-10 64-bit integer.
// Blank lines and lines starting with '#' are ignored, so a feed can be
// annotated or generated by hand with netcat. Malformed lines are counted
// and dropped without closing the connection.
//
// Each accepted connection is handled in a dedicated goroutine which parses
// lines and forwards samples to a buffered consumer channel. The node drains
// that channel and applies the samples to its store.
package ingest
