package notify

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

type fakeBackend struct {
	name  string
	ok    bool
	calls *[]string
}

func (f fakeBackend) Name() string { return f.name }

func (f fakeBackend) Attempt(n Notification) bool {
	*f.calls = append(*f.calls, f.name)
	return f.ok
}

func TestDispatchStopsAtFirstSuccess(t *testing.T) {
	var calls []string
	dispatcher := Dispatcher{Backends: []Backend{
		fakeBackend{name: "native", calls: &calls},
		fakeBackend{name: "notify-send", calls: &calls},
		fakeBackend{name: "kdialog", ok: true, calls: &calls},
		fakeBackend{name: "zenity", ok: true, calls: &calls},
	}}

	dispatcher.Dispatch(Notification{Title: "t", Body: "b"})

	want := []string{"native", "notify-send", "kdialog"}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("expected attempts %v, got %v", want, calls)
	}
}

func TestExecBackendSkipsWhenProbeFails(t *testing.T) {
	ran := false
	backend := execBackend{
		command: "kdialog",
		args:    kdialogArgs,
		lookPath: func(string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
		run: func(string, ...string) error {
			ran = true
			return nil
		},
	}

	if backend.Attempt(Notification{Title: "t", Body: "b"}) {
		t.Fatalf("expected attempt to fail when probe fails")
	}
	if ran {
		t.Fatalf("utility invoked despite failed probe")
	}
}

func TestExecBackendFailedInvocationFallsThrough(t *testing.T) {
	backend := execBackend{
		command:  "zenity",
		args:     zenityArgs,
		lookPath: func(string) (string, error) { return "/usr/bin/zenity", nil },
		run:      func(string, ...string) error { return errors.New("exit status 1") },
	}

	if backend.Attempt(Notification{Title: "t", Body: "b"}) {
		t.Fatalf("expected attempt to fail when invocation fails")
	}
}

func TestExecBackendInvocationArgs(t *testing.T) {
	var gotName string
	var gotArgs []string
	backend := execBackend{
		command:  "notify-send",
		args:     notifySendArgs,
		lookPath: func(string) (string, error) { return "/usr/bin/notify-send", nil },
		run: func(name string, args ...string) error {
			gotName = name
			gotArgs = args
			return nil
		},
	}

	if !backend.Attempt(Notification{Title: "title", Body: "body", Icon: "folder-download"}) {
		t.Fatalf("expected attempt to succeed")
	}
	if gotName != "notify-send" {
		t.Fatalf("unexpected command: %s", gotName)
	}
	want := []string{"title", "body", "--icon", "folder-download", "--expire-time", "5000"}
	if !reflect.DeepEqual(gotArgs, want) {
		t.Fatalf("expected args %v, got %v", want, gotArgs)
	}
}

func TestConsoleBackendAlwaysSucceeds(t *testing.T) {
	var out bytes.Buffer
	backend := consoleBackend{writer: &out}

	if !backend.Attempt(Notification{Title: "File Organizer", Body: "Moved 2 files"}) {
		t.Fatalf("console backend must never fail")
	}
	output := out.String()
	if !strings.Contains(output, "NOTIFICATION:") {
		t.Fatalf("expected NOTIFICATION label, got %q", output)
	}
	if !strings.Contains(output, "File Organizer") || !strings.Contains(output, "Moved 2 files") {
		t.Fatalf("expected title and body, got %q", output)
	}
}

func TestDefaultBackendOrder(t *testing.T) {
	backends := DefaultBackends(io.Discard)

	want := []string{"beeep", "notify-send", "kdialog", "zenity", "console"}
	if len(backends) != len(want) {
		t.Fatalf("expected %d backends, got %d", len(want), len(backends))
	}
	for i, backend := range backends {
		if backend.Name() != want[i] {
			t.Fatalf("expected backend %d to be %s, got %s", i, want[i], backend.Name())
		}
	}
}

func TestDispatchFallsThroughToConsole(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	dispatcher := Dispatcher{Backends: []Backend{
		fakeBackend{name: "native", calls: &calls},
		fakeBackend{name: "notify-send", calls: &calls},
		consoleBackend{writer: &out},
	}}

	dispatcher.Dispatch(Notification{Title: "t", Body: "b"})

	if out.Len() == 0 {
		t.Fatalf("expected console fallback output")
	}
}
