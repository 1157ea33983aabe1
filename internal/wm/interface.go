package wm

// Window is one open application window as reported by the compositor.
type Window struct {
	// ID is the compositor's handle for the window: the Hyprland address
	// or the X11 window id, both in wmctrl/hyprctl's hex "0x..." form.
	// FocusWindow converts to whatever the focus tool expects.
	ID        string
	Class     string
	Title     string
	Workspace string
	Focused   bool
}

// WindowManager abstracts the compositor-specific enumeration and focus
// calls so the switcher works the same on Hyprland and plain X11.
type WindowManager interface {
	// ListWindows enumerates the currently mapped windows, with the
	// focused one marked.
	ListWindows() ([]Window, error)
	// ActiveWindow returns the currently focused window, or an empty
	// Window when nothing holds focus.
	ActiveWindow() (Window, error)
	// FocusWindow brings the specified window to front
	FocusWindow(Window) error
	// Name returns the WM name for logging/display
	Name() string
}
