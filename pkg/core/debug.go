package core

// DebugMode controls whether fallback widgets expose detailed error
// information. When false, only minimal information is surfaced.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the framework.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
