// Package chirouter mounts navbar handlers on a chi router.
package chirouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackielii/navbar"
)

// Router adapts a chi.Router to navbar.Router. It also serves HTTP, so the
// wrapped router can be handed straight to an http.Server.
type Router struct {
	router chi.Router
}

var _ navbar.Router = (*Router)(nil)

// New wraps r so it satisfies navbar.Router.
func New(r chi.Router) *Router {
	return &Router{router: r}
}

func (r *Router) Route(path string, fn func(navbar.Router)) {
	r.router.Route(path, func(r chi.Router) {
		fn(&Router{router: r})
	})
}

func (r *Router) HandleMethod(method, path string, handler http.Handler) {
	if method == "" {
		r.router.Handle(path, handler)
		return
	}
	r.router.Method(method, path, handler)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
