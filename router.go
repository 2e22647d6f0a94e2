package navbar

import (
	"net/http"
	"path"
	"strings"
)

// Router registers HTTP handlers. It is the small surface the [Handler] needs,
// so it can be mounted on http.ServeMux or on chi (see the chirouter package).
type Router interface {
	Route(path string, fn func(Router))
	HandleMethod(method, path string, handler http.Handler)
}

type stdRouter struct {
	prefix string
	router *http.ServeMux
}

// NewRouter creates a Router backed by http.ServeMux.
// If router is nil, it uses http.DefaultServeMux.
//
//	mux := http.NewServeMux()
//	h.Mount(navbar.NewRouter(mux), "/nav")
func NewRouter(router *http.ServeMux) *stdRouter {
	if router == nil {
		router = http.DefaultServeMux
	}
	return &stdRouter{router: router}
}

func (r *stdRouter) Route(p string, fn func(Router)) {
	fn(&stdRouter{prefix: joinRoute(r.prefix, p), router: r.router})
}

func (r *stdRouter) HandleMethod(method, p string, handler http.Handler) {
	pattern := joinRoute(r.prefix, p)
	if method != "" {
		pattern = method + " " + pattern
	}
	r.router.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func joinRoute(prefix, p string) string {
	if prefix == "" {
		return p
	}
	joined := path.Join(prefix, p)
	// path.Join drops the trailing slash that marks a subtree pattern
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}
