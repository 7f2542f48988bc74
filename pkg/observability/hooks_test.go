package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type event struct {
	op    Operation
	phase string
	err   error
}

type testManagerHooks struct {
	events []event
}

func (h *testManagerHooks) OnOperationStart(_ context.Context, op Operation, _, _ string) {
	h.events = append(h.events, event{op: op, phase: "start"})
}

func (h *testManagerHooks) OnOperationComplete(_ context.Context, op Operation, _, _ string, _ time.Duration, err error) {
	h.events = append(h.events, event{op: op, phase: "complete", err: err})
}

type testHTTPHooks struct{ statuses []int }

func (h *testHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	m := NoopManagerHooks{}
	m.OnOperationStart(ctx, OpWrite, "dat", "out.dat")
	m.OnOperationComplete(ctx, OpWrite, "dat", "out.dat", time.Second, nil)

	h := NoopHTTPHooks{}
	h.OnResponse(ctx, "GET", "/formats", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Manager().(NoopManagerHooks); !ok {
		t.Error("Manager() should return NoopManagerHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	custom := &testManagerHooks{}
	SetManagerHooks(custom)
	if Manager() != custom {
		t.Error("SetManagerHooks should set custom hooks")
	}

	SetManagerHooks(nil)
	if Manager() != custom {
		t.Error("SetManagerHooks(nil) should keep the current hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Manager().(NoopManagerHooks); !ok {
		t.Error("Reset() should restore NoopManagerHooks")
	}
}

func TestTrack(t *testing.T) {
	Reset()
	defer Reset()

	hooks := &testManagerHooks{}
	SetManagerHooks(hooks)

	sentinel := errors.New("boom")
	err := Track(context.Background(), OpProcess, "dat", "model.dat", func() error { return sentinel })
	if err != sentinel {
		t.Errorf("Track() error = %v, want %v", err, sentinel)
	}

	if len(hooks.events) != 2 {
		t.Fatalf("events = %d, want 2", len(hooks.events))
	}
	if hooks.events[0].phase != "start" || hooks.events[1].phase != "complete" {
		t.Errorf("events = %+v, want start then complete", hooks.events)
	}
	if hooks.events[1].err != sentinel {
		t.Errorf("complete err = %v, want %v", hooks.events[1].err, sentinel)
	}
}
