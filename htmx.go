package navbar

import (
	"net/http"
	"net/url"

	"github.com/angelofallars/htmx-go"
)

// HTTPNavigator navigates the client of a single HTTP exchange. htmx requests
// get an HX-Location header so htmx swaps the page without a full reload;
// anything else gets a 303 redirect.
type HTTPNavigator struct {
	w    http.ResponseWriter
	r    *http.Request
	path string
	err  error
}

// ResponseNavigator returns a navigator that answers r on w.
func ResponseNavigator(w http.ResponseWriter, r *http.Request) *HTTPNavigator {
	return &HTTPNavigator{w: w, r: r}
}

// NavigateTo answers the exchange. Only the first call has an effect, since
// the response is written by then.
func (n *HTTPNavigator) NavigateTo(path string) {
	if n.path != "" {
		return
	}
	n.path = path
	if htmx.IsHTMX(n.r) {
		n.err = htmx.NewResponse().Location(path).Write(n.w)
		return
	}
	http.Redirect(n.w, n.r, path, http.StatusSeeOther)
}

// Navigated reports the path the client was sent to, if any.
func (n *HTTPNavigator) Navigated() (string, bool) {
	return n.path, n.path != ""
}

// Err returns the error from writing the htmx response headers.
func (n *HTTPNavigator) Err() error {
	return n.err
}

// CurrentPath returns the path the browser is showing. htmx reports it in the
// HX-Current-URL header; plain requests may pass it as the "current" query parameter.
func CurrentPath(r *http.Request) string {
	if cur, ok := htmx.GetCurrentURL(r); ok {
		if u, err := url.Parse(cur); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return r.URL.Query().Get("current")
}
