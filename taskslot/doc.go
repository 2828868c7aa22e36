// Package taskslot provides a state-tracking container for a single
// poll-driven task, keeping track of whether that task is still running,
// has finished with a value, or has already had its value taken away by
// the caller.
//
// Its purpose is to let an aggregate poller drive several independent
// tasks to completion through repeated polling, where some of the tasks
// will finish before others: a finished task must not be polled again, but
// its value must remain available until the aggregate is ready to collect
// all of the values together.
//
// This is a "nuts-and-bolts" abstraction intended to be used as an
// implementation detail of a scheduler or aggregate combinator that owns
// the overall polling loop, and is not intended to be treated as a
// cross-cutting concern that appears in a library's exported API. Use
// idomatic Go features like channels and goroutines to represent
// relationships between concurrent work in larger scopes.
package taskslot
