package httpapi

// defaultPrecision is applied when the precision query parameter is absent.
var defaultPrecision = "all"

// SetDefaultPrecision configures the precision used when a request omits it.
// Empty input restores "all".
func SetDefaultPrecision(p string) {
	if p == "" {
		p = "all"
	}
	defaultPrecision = p
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
}
