// Package remote subscribes to a NATS subject carrying JSON-encoded
// contact windows and feeds decoded contact.Contact values to a
// caller-supplied sink.
//
// It is an outer I/O collaborator: it never touches contact.BuildIndex
// or any search entry point directly, and it never blocks the core's
// own execution.
package remote
