package navbar

import (
	"fmt"
	"net/http"
)

// ValidationError reports a malformed entry found while building a [Registry].
type ValidationError struct {
	Index  int
	Entry  Entry
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("navbar: entry %d (%q -> %q): %s", e.Index, e.Entry.Label, e.Entry.Path, e.Reason)
}

// ConfigurationError reports a missing collaborator at render time.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "navbar: " + e.Reason
}

// HTTPError carries a status code through the handler's error hook.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, http.StatusText(e.Code), e.Message)
}
