package types

// Host is the narrow interface through which the core reaches the
// environment's resource primitives. All calls are synchronous; the core
// never retries them. Per-resource failures are reported back as errors and
// the caller decides whether to continue.
type Host interface {
	// OpenResource opens the resource named by locator and returns its
	// handle. On failure the returned handle is ignored.
	OpenResource(locator string) (Handle, error)

	// PersistResource saves outstanding modifications on an open resource.
	// Called before CloseResource during deactivation.
	PersistResource(h Handle) error

	// CloseResource releases an open resource.
	CloseResource(h Handle) error

	// FocusResource brings the resource named by locator to the
	// foreground. Best-effort; failures are ignored by the core.
	FocusResource(locator string) error

	// IsResourceVisible reports whether an open resource is currently
	// visible in the host environment.
	IsResourceVisible(h Handle) bool
}
