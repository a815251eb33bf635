package config

// Canonical transport names.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "streamable-http"
)

var transportAliases = map[string]string{
	"stdio":           TransportStdio,
	"http":            TransportHTTP,
	"stream":          TransportHTTP,
	"streamable-http": TransportHTTP,
}

// CanonicalTransport maps a configured transport value to its canonical
// form. Unknown values fall back to stdio; ok is false so the caller can
// warn about the misconfiguration.
func CanonicalTransport(raw string) (string, bool) {
	if raw == "" {
		return TransportStdio, true
	}
	if canonical, ok := transportAliases[raw]; ok {
		return canonical, true
	}
	return TransportStdio, false
}
