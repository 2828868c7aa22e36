package taskslot_test

import (
	"testing"

	"github.com/apparentlymart/go-taskslot/taskslot"
)

func TestTaskFunc(t *testing.T) {
	calls := 0
	task := taskslot.TaskFunc[string](func(wk taskslot.Waker) (string, bool, error) {
		calls++
		return "from closure", true, nil
	})

	val, done, err := task.Poll(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !done {
		t.Fatal("task not done")
	}
	if got, want := val, "from closure"; got != want {
		t.Errorf("wrong value\ngot:  %s\nwant: %s", got, want)
	}
	if got, want := calls, 1; got != want {
		t.Errorf("wrong number of calls %d; want %d", got, want)
	}
}

func TestWakerFunc(t *testing.T) {
	wakes := 0
	var wk taskslot.Waker = taskslot.WakerFunc(func() {
		wakes++
	})

	wk.Wake()
	wk.Wake()
	if got, want := wakes, 2; got != want {
		t.Errorf("wrong number of wakes %d; want %d", got, want)
	}
}
