// Package store provides the backends that hold series samples.
//
// Two implementations are available. InmemStore keeps a bounded rolling
// window of recent samples per series and forgets everything on restart.
// BadgerStore wraps an InmemStore and writes every sample through to a
// BadgerDB database, so the service can come back after a restart with its
// series intact; reads are served from the windows and only fall back to the
// database for samples that have rolled out of them.
//
// Stores are not safe for concurrent use. The node serializes access to its
// store, and the HTTP service reads go through the node.
package store
