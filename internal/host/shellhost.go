// Package host binds the workset core to the local environment. The
// production Host runs configurable shell command templates for each
// resource primitive and treats the filesystem as the visibility oracle.
package host

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/worksets/pkg/types"
)

// defaultShell runs command templates when none is configured.
const defaultShell = "/bin/sh"

// pathPlaceholder is replaced with the resource locator in every template.
const pathPlaceholder = "{path}"

// ShellHost implements types.Host. Each primitive runs its configured
// command template through the shell; an empty template makes the
// primitive a no-op. Opening verifies the locator exists on disk and mints
// a UUID v7 handle; visibility is whether the path still exists.
type ShellHost struct {
	config types.HostConfig
	log    *slog.Logger
}

// NewShellHost creates a ShellHost. A nil logger falls back to slog.Default.
func NewShellHost(config types.HostConfig, logger *slog.Logger) *ShellHost {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShellHost{config: config, log: logger}
}

var _ types.Host = (*ShellHost)(nil)

// OpenResource stats the locator and, when configured, runs the open
// command. A missing path or failing command is an open failure.
func (h *ShellHost) OpenResource(locator string) (types.Handle, error) {
	if _, err := os.Stat(locator); err != nil {
		return types.Handle{}, fmt.Errorf("stat resource: %w", err)
	}
	if err := h.runTemplate(h.config.OpenCommand, locator); err != nil {
		return types.Handle{}, fmt.Errorf("open command: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return types.Handle{}, fmt.Errorf("generating handle ID: %w", err)
	}

	h.log.Debug("opened resource", "locator", locator, "handle", id.String())
	return types.Handle{
		HandleID: id.String(),
		Locator:  locator,
		OpenedAt: time.Now().UTC(),
	}, nil
}

// PersistResource runs the persist command for the handle's locator.
func (h *ShellHost) PersistResource(handle types.Handle) error {
	return h.runTemplate(h.config.PersistCommand, handle.Locator)
}

// CloseResource runs the close command for the handle's locator.
func (h *ShellHost) CloseResource(handle types.Handle) error {
	h.log.Debug("closing resource", "locator", handle.Locator, "handle", handle.HandleID)
	return h.runTemplate(h.config.CloseCommand, handle.Locator)
}

// FocusResource runs the focus command for the locator. Focus is
// best-effort for callers; the error is returned for logging only.
func (h *ShellHost) FocusResource(locator string) error {
	return h.runTemplate(h.config.FocusCommand, locator)
}

// IsResourceVisible reports whether the handle's locator still exists.
func (h *ShellHost) IsResourceVisible(handle types.Handle) bool {
	_, err := os.Stat(handle.Locator)
	return err == nil
}

// runTemplate substitutes the locator into template and runs it through the
// configured shell. Empty templates are no-ops.
func (h *ShellHost) runTemplate(template, locator string) error {
	if template == "" {
		return nil
	}

	command := strings.ReplaceAll(template, pathPlaceholder, locator)
	cmd := exec.Command(h.shell(), "-c", command)
	out, err := cmd.CombinedOutput()
	if err != nil {
		h.log.Warn("host command failed", "command", command, "output", strings.TrimSpace(string(out)), "err", err)
		return fmt.Errorf("running %q: %w", command, err)
	}
	return nil
}

func (h *ShellHost) shell() string {
	if h.config.Shell != "" {
		return h.config.Shell
	}
	return defaultShell
}
