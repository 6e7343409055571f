package notify

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
)

// LookPathFunc probes for an executable on PATH. Injectable so tests can
// simulate a tool that is not installed.
type LookPathFunc func(name string) (string, error)

// RunFunc invokes an external notification utility and reports its outcome.
type RunFunc func(name string, args ...string) error

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// beeepBackend delivers through the cross-desktop notification API.
type beeepBackend struct{}

func (beeepBackend) Name() string { return "beeep" }

func (beeepBackend) Attempt(n Notification) bool {
	return beeep.Notify(n.Title, n.Body, n.Icon) == nil
}

// execBackend shells out to one desktop notification utility. The utility
// is probed on PATH first; a failed or erroring probe skips the invocation
// entirely, and an invocation failure is treated the same as absence.
type execBackend struct {
	command  string
	args     func(n Notification) []string
	lookPath LookPathFunc
	run      RunFunc
}

func (b execBackend) Name() string { return b.command }

func (b execBackend) Attempt(n Notification) bool {
	if _, err := b.lookPath(b.command); err != nil {
		return false
	}
	return b.run(b.command, b.args(n)...) == nil
}

func notifySendArgs(n Notification) []string {
	return []string{n.Title, n.Body, "--icon", n.Icon, "--expire-time", "5000"}
}

func kdialogArgs(n Notification) []string {
	return []string{"--title", n.Title, "--passivepopup", n.Body, "5"}
}

func zenityArgs(n Notification) []string {
	return []string{"--info", "--title", n.Title, "--text", n.Body, "--timeout", "5"}
}

var consoleLabelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F6AE2D")).
	Bold(true)

// consoleBackend is the terminal fallback. It always succeeds.
type consoleBackend struct {
	writer io.Writer
}

func (consoleBackend) Name() string { return "console" }

func (b consoleBackend) Attempt(n Notification) bool {
	fmt.Fprintf(b.writer, "\n%s %s: %s\n", consoleLabelStyle.Render("NOTIFICATION:"), n.Title, n.Body)
	return true
}

// DefaultBackends returns the delivery chain in priority order: the native
// API first, then notify-send, kdialog and zenity, ending with the console
// writer.
func DefaultBackends(console io.Writer) []Backend {
	return []Backend{
		beeepBackend{},
		execBackend{command: "notify-send", args: notifySendArgs, lookPath: exec.LookPath, run: runCommand},
		execBackend{command: "kdialog", args: kdialogArgs, lookPath: exec.LookPath, run: runCommand},
		execBackend{command: "zenity", args: zenityArgs, lookPath: exec.LookPath, run: runCommand},
		consoleBackend{writer: console},
	}
}
