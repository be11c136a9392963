// Package endpoint picks the backend base URL for the hosting runtime.
package endpoint

const (
	// SidecarBaseURL is where the desktop shell's backend sidecar listens.
	SidecarBaseURL = "http://127.0.0.1:8787/api"
	// DevServerBaseURL is where the standalone development server listens.
	DevServerBaseURL = "http://127.0.0.1:8000/api"

	TargetSidecar   = "sidecar"
	TargetDevServer = "dev-server"
)

// Signal is the runtime hint available at process start.
// The zero value means "not hosted by the desktop shell".
type Signal struct {
	DesktopBridge bool
}

// Target names a resolved backend.
type Target struct {
	Name    string
	BaseURL string
}

// Resolve returns the base URL for the signal. It never fails.
func Resolve(sig Signal) string {
	return ResolveTarget(sig).BaseURL
}

// ResolveTarget is Resolve with the target name attached for logging.
func ResolveTarget(sig Signal) Target {
	if sig.DesktopBridge {
		return Target{Name: TargetSidecar, BaseURL: SidecarBaseURL}
	}
	return Target{Name: TargetDevServer, BaseURL: DevServerBaseURL}
}
