package gate

const (
	LoginPath   = "/login"
	DefaultPath = "/"
)

// Decide evaluates the route guard for a navigation to path. It returns the
// redirect target and true when the navigation must be redirected. The guard
// only reads state, so evaluating it repeatedly is idempotent.
func Decide(connected bool, path string) (string, bool) {
	switch {
	case !connected && path != LoginPath:
		return LoginPath, true
	case connected && path == LoginPath:
		return DefaultPath, true
	default:
		return "", false
	}
}
