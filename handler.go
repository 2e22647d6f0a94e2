package navbar

import (
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/sirupsen/logrus"
)

// Handler serves a registry over HTTP: the navbar fragment and the endpoint
// its links post to when clicked.
type Handler struct {
	reg         *Registry
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []func(http.Handler) http.Handler
	renderOpts  []RenderOption
	logger      *logrus.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithErrorHandler replaces the default error response.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) HandlerOption {
	return func(h *Handler) {
		h.onError = onError
	}
}

// WithMiddlewares wraps every route. The first middleware is the outermost.
func WithMiddlewares(middlewares ...func(http.Handler) http.Handler) HandlerOption {
	return func(h *Handler) {
		h.middlewares = append(h.middlewares, middlewares...)
	}
}

// WithRenderOptions adds options applied to every render, after the handler's own.
func WithRenderOptions(opts ...RenderOption) HandlerOption {
	return func(h *Handler) {
		h.renderOpts = append(h.renderOpts, opts...)
	}
}

// WithLogger sets the logger. Without one, nothing is logged.
func WithLogger(logger *logrus.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a Handler for reg.
func NewHandler(reg *Registry, opts ...HandlerOption) *Handler {
	h := &Handler{reg: reg}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = discardLogger()
	}
	if h.onError == nil {
		h.onError = h.defaultError
	}
	return h
}

func (h *Handler) defaultError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}
	h.logger.WithError(err).WithField("path", r.URL.Path).Error("navbar request failed")
	http.Error(w, http.StatusText(code), code)
}

// Mount registers the handler's routes under route:
//
//	GET  {route}/          the navbar fragment
//	POST {route}/activate  activate the entry named by the "path" parameter
func (h *Handler) Mount(router Router, route string) {
	activateURL := path.Join(route, "activate")
	router.Route(route, func(r Router) {
		r.HandleMethod(http.MethodGet, "/", h.wrap(h.fragment(activateURL)))
		r.HandleMethod(http.MethodPost, "/activate", h.wrap(http.HandlerFunc(h.activate)))
	})
}

func (h *Handler) wrap(next http.Handler) http.Handler {
	handler := next
	for i := len(h.middlewares) - 1; i >= 0; i-- {
		handler = h.middlewares[i](handler)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r.WithContext(WithRegistry(r.Context(), h.reg)))
	})
}

func (h *Handler) fragment(activateURL string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// links only navigate when clicked, through the activate endpoint
		nav := NavigatorFunc(func(string) {})
		opts := append([]RenderOption{
			WithActivePath(CurrentPath(r)),
			WithActivateURL(activateURL),
		}, h.renderOpts...)
		m, err := Render(h.reg, nav, opts...)
		if err != nil {
			h.onError(w, r, err)
			return
		}
		bw := newBuffered(w)
		if err := m.Component().Render(r.Context(), bw); err != nil {
			bw.discard()
			h.onError(w, r, fmt.Errorf("render navbar: %w", err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := bw.close(); err != nil {
			h.logger.WithError(err).Warn("write navbar fragment")
		}
	})
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	target := r.FormValue("path")
	if _, ok := h.reg.Lookup(target); !ok {
		h.onError(w, r, &HTTPError{Code: http.StatusNotFound, Message: fmt.Sprintf("no navigation entry for %q", target)})
		return
	}
	nav := ResponseNavigator(w, r)
	m, err := Render(h.reg, nav, h.renderOpts...)
	if err != nil {
		h.onError(w, r, err)
		return
	}
	el, _ := m.Element(target)
	el.Activate()
	if err := nav.Err(); err != nil {
		h.logger.WithError(err).WithField("to", target).Error("write navigation response")
		return
	}
	h.logger.WithFields(logrus.Fields{"label": el.Label, "to": el.Path}).Debug("navigated")
}
