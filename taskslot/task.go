package taskslot

// A Waker is the handle an external scheduler passes into each poll so
// that a task which cannot finish yet can register its interest in being
// polled again once more progress is possible.
//
// Wakers are opaque to this package: a [Slot] forwards whatever waker it
// was given to its task unmodified, and never calls Wake itself. What a
// particular waker does when woken is an agreement between the scheduler
// and the tasks it runs.
type Waker interface {
	// Wake asks the scheduler that issued this waker to poll the
	// associated task again.
	Wake()
}

// WakerFunc is an adapter to allow the use of an ordinary function as a
// [Waker].
type WakerFunc func()

var _ Waker = WakerFunc(nil)

// Wake implements [Waker] by calling f.
func (f WakerFunc) Wake() {
	f()
}

// A Task is a unit of deferred work that an external scheduler drives one
// step at a time, eventually producing a value of type T.
//
// Each Poll call either finishes the task or leaves it suspended:
//
//   - If the task cannot finish yet then it returns done == false with a
//     nil error, typically after arranging for wk to be woken once it can
//     make more progress. The task must tolerate being polled again in
//     this situation, and will only ever be polled in place through the
//     same interface value it was stored under, so any internal pointers
//     it keeps into its own state remain valid across calls.
//   - If the task has produced its value then it returns that value with
//     done == true. A [Slot] never polls a task again once it has
//     reported done.
//   - If the task's own work fails then it returns a non-nil error with
//     done == false. What state the task is left in afterwards is the
//     task's own concern; a [Slot] propagates the error to its caller
//     unchanged and performs no retries of its own.
type Task[T any] interface {
	Poll(wk Waker) (val T, done bool, err error)
}

// TaskFunc is an adapter to allow the use of an ordinary function as a
// [Task], for tasks simple enough to keep their state in a closure.
type TaskFunc[T any] func(wk Waker) (T, bool, error)

var _ Task[int] = TaskFunc[int](nil)

// Poll implements [Task] by calling f.
func (f TaskFunc[T]) Poll(wk Waker) (T, bool, error) {
	return f(wk)
}
