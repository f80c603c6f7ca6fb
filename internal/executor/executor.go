// Package executor turns an activated result into an OS action: spawn
// the application, run a shell command, open a file or URL, or apply a
// theme. The engine decides what should happen; this decides how.
package executor

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"flingr/internal/domain"
	"flingr/internal/eventbus"
	"flingr/internal/logger"
)

// Executor spawns processes detached from the launcher and reports
// failures asynchronously over the event bus.
type Executor struct {
	terminal   string
	bus        eventbus.EventBus
	applyTheme func(name string) error
	log        *log.Logger
}

// New creates an executor. terminal is the command prefix used to run
// shell commands interactively; applyTheme persists a theme choice.
func New(terminal string, bus eventbus.EventBus, applyTheme func(name string) error) *Executor {
	return &Executor{
		terminal:   terminal,
		bus:        bus,
		applyTheme: applyTheme,
		log:        logger.New("exec"),
	}
}

// Activate performs the action for one result. It never blocks on the
// spawned process; a synchronous start failure is returned and also
// surfaces as a LaunchFailed event.
func (x *Executor) Activate(res domain.Result) error {
	var err error

	switch res.Kind {
	case domain.KindApp:
		command := stripFieldCodes(res.Exec)
		if res.App != nil && res.App.Terminal {
			command = x.terminal + " " + command
		}
		err = x.spawn(command)
	case domain.KindRunCommand:
		err = x.spawn(x.terminal + " " + res.Exec)
	case domain.KindPowerAction:
		err = x.spawn(res.Exec)
	case domain.KindFile, domain.KindConfigFile:
		err = x.spawn("xdg-open " + shellQuote(res.Exec))
	case domain.KindShortcut:
		if strings.Contains(res.Exec, "://") {
			err = x.spawn("xdg-open " + shellQuote(res.Exec))
		} else {
			err = x.spawn(res.Exec)
		}
	case domain.KindTheme:
		err = x.applyTheme(res.Exec)
		if err == nil {
			x.bus.Publish(eventbus.ThemeAppliedEvent{Name: res.Exec})
			return nil
		}
	case domain.KindPlaceholder:
		return nil
	}

	if err != nil {
		x.log.Error("activation failed", "kind", res.Kind, "label", res.Label, "err", err)
		x.bus.Publish(eventbus.LaunchFailedEvent{Label: res.Label, Err: err})
		return err
	}
	if res.Kind == domain.KindApp {
		x.bus.Publish(eventbus.AppLaunchedEvent{Label: res.Label})
	}
	return nil
}

// spawn starts a detached shell command and releases it so the launcher
// can exit independently of its children.
func (x *Executor) spawn(command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return fmt.Errorf("empty command")
	}

	cmd := exec.Command("sh", "-c", command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %w", command, err)
	}
	return cmd.Process.Release()
}

// stripFieldCodes removes desktop-entry field codes (%u, %F, ...) from
// an Exec line; the launcher never passes files or URLs to apps.
func stripFieldCodes(execLine string) string {
	fields := strings.Fields(execLine)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) == 2 && f[0] == '%' && f[1] != '%' {
			continue
		}
		kept = append(kept, strings.ReplaceAll(f, "%%", "%"))
	}
	return strings.Join(kept, " ")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
