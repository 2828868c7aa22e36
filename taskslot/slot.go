package taskslot

// slotState distinguishes the three mutually-exclusive things a [Slot]
// can be holding at any moment.
type slotState uint8

const (
	// statePending means the slot still holds its unfinished task.
	statePending slotState = iota
	// stateDone means the task finished and the slot holds its value.
	stateDone
	// stateTaken means the value was taken and the slot holds nothing.
	stateTaken
)

// A Slot tracks a single poll-driven task through its whole life: first
// holding the unfinished task itself, then holding the value the task
// produced, and finally holding nothing at all once that value has been
// taken by the caller.
//
// Exactly one of those three is active at a time. A pending slot becomes
// done at most once, when [Slot.Poll] observes the task finish; a done
// slot becomes taken at most once, when [Slot.Take] removes the value;
// and a taken slot is permanently inert. There is no transition from
// pending directly to taken, and none out of taken at all.
//
// A Slot is not safe for concurrent use. Like the task it wraps, each
// Slot belongs to one scheduler-driven codepath at a time, and it's the
// caller's responsibility to ensure that nothing else polls or reads it
// concurrently. A Slot must also not be copied after its first Poll: the
// pending task is only ever reached in place through the slot it was
// stored in, which is what lets the task keep internal pointers into its
// own state between polls.
//
// Abandoning a Slot needs no explicit step: an unreachable slot releases
// its unfinished task or unconsumed value to the garbage collector along
// with itself.
type Slot[T any] struct {
	state slotState
	task  Task[T]
	val   T
}

// New returns a pending slot wrapping the given not-yet-finished task.
//
// The slot takes sole ownership of the task. Nothing else may poll or
// otherwise mutate the task afterwards; doing so would break the
// guarantees that [Slot.Poll] relies on.
func New[T any](task Task[T]) *Slot[T] {
	return &Slot[T]{
		state: statePending,
		task:  task,
	}
}

// NewDone returns a slot that is already done with the given value, as if
// it had wrapped a task that was polled to completion and produced it.
//
// This is for seeding an aggregate poller with values that are already
// known, so that known and still-running parts of the aggregate can be
// handled uniformly.
func NewDone[T any](val T) *Slot[T] {
	return &Slot[T]{
		state: stateDone,
		val:   val,
	}
}

// Poll drives the slot's task one step forward if it hasn't finished yet,
// forwarding wk to the task untouched.
//
// If the task reports that it cannot finish yet then Poll returns false
// and the slot remains pending, with the task left exactly where it
// suspended, ready to be polled again. If the task finishes then the slot
// keeps its value, drops its reference to the task, and Poll returns
// true; once that has happened all further Poll calls return true
// immediately without involving the task again.
//
// If the task's own work fails then Poll returns that error unchanged and
// the slot remains pending, with no transition of its own. The slot
// attaches no retry policy to such errors: whether to poll again or to
// discard the slot is the caller's decision, made against the wrapped
// task's own contract.
//
// Poll panics if called after [Slot.Take] has removed the value. No
// polling protocol defines any behavior past that point, so reaching it
// always indicates a bug in the calling combinator rather than a
// recoverable condition.
//
// Poll returns true if and only if the slot is done when it returns.
func (s *Slot[T]) Poll(wk Waker) (bool, error) {
	switch s.state {
	case statePending:
		val, done, err := s.task.Poll(wk)
		if err != nil {
			// The task's failure is not ours to interpret: the slot
			// stays pending and the caller decides what happens next.
			return false, err
		}
		if !done {
			return false, nil
		}
		s.val = val
		s.task = nil
		s.state = stateDone
		return true, nil
	case stateDone:
		return true, nil
	default:
		panic("taskslot: Poll on a slot whose value was already taken")
	}
}

// Peek returns the task's value and true if the task has finished and the
// value hasn't been taken yet, or the zero value of T and false
// otherwise.
//
// Peek never changes the slot's state and never drives the task, so it's
// safe to call any number of times from the slot's owner.
func (s *Slot[T]) Peek() (T, bool) {
	if s.state != stateDone {
		var zero T
		return zero, false
	}
	return s.val, true
}

// Take removes the task's value from the slot and returns it with true,
// if the task has finished and the value hasn't already been taken. The
// slot then holds nothing, permanently: a second Take returns the zero
// value of T and false, as does a Take on a slot whose task hasn't
// finished yet.
//
// Take never drives the task: a Take while the task is still running
// simply reports that no value is available, without forcing progress.
func (s *Slot[T]) Take() (T, bool) {
	var zero T
	if s.state != stateDone {
		return zero, false
	}
	val := s.val
	// Swap in the zero value so the slot doesn't keep the taken value
	// reachable after ownership has moved to the caller.
	s.val = zero
	s.state = stateTaken
	return val, true
}
