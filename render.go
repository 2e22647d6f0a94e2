package navbar

import (
	"cmp"
	"reflect"
)

// Navigator is the routing collaborator. It receives paths unchanged.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to a Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) { f(path) }

// Element is one actionable link produced by Render.
type Element struct {
	Label  string
	Path   string
	Active bool

	nav Navigator
}

// Activate hands the element's path to the navigator it was rendered with.
// Elements not produced by Render have no navigator and do nothing.
func (e Element) Activate() {
	if e.nav == nil {
		return
	}
	e.nav.NavigateTo(e.Path)
}

// Markup is the rendered description of a navigation bar.
type Markup struct {
	Elements []Element

	navClass    string
	linkClass   string
	activateURL string
}

// Element returns the element for path.
func (m *Markup) Element(path string) (Element, bool) {
	for _, e := range m.Elements {
		if e.Path == path {
			return e, true
		}
	}
	return Element{}, false
}

type renderConfig struct {
	activePath  string
	navClass    string
	linkClass   string
	activateURL string
}

// RenderOption configures Render.
type RenderOption func(*renderConfig)

// WithActivePath marks the element whose path equals path as active.
func WithActivePath(path string) RenderOption {
	return func(c *renderConfig) {
		c.activePath = path
	}
}

// WithNavClass sets the style class of the enclosing nav element. Defaults to "bg-color".
func WithNavClass(class string) RenderOption {
	return func(c *renderConfig) {
		c.navClass = class
	}
}

// WithLinkClass sets the style class of each link. Defaults to "nav-link".
func WithLinkClass(class string) RenderOption {
	return func(c *renderConfig) {
		c.linkClass = class
	}
}

// WithActivateURL sets the endpoint links post to when clicked with htmx.
// When empty, links are plain anchors.
func WithActivateURL(url string) RenderOption {
	return func(c *renderConfig) {
		c.activateURL = url
	}
}

// Render produces one element per registry entry, in order. Activating an
// element calls nav.NavigateTo with the entry's path. A nil navigator is a
// *ConfigurationError whatever the registry holds.
func Render(reg *Registry, nav Navigator, opts ...RenderOption) (*Markup, error) {
	if isNilNavigator(nav) {
		return nil, &ConfigurationError{Reason: "render: navigator is required"}
	}
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Markup{
		Elements:    make([]Element, 0, reg.Len()),
		navClass:    cmp.Or(cfg.navClass, "bg-color"),
		linkClass:   cmp.Or(cfg.linkClass, "nav-link"),
		activateURL: cfg.activateURL,
	}
	for _, e := range reg.All() {
		m.Elements = append(m.Elements, Element{
			Label:  e.Label,
			Path:   e.Path,
			Active: cfg.activePath != "" && e.Path == cfg.activePath,
			nav:    nav,
		})
	}
	return m, nil
}

func isNilNavigator(nav Navigator) bool {
	if nav == nil {
		return true
	}
	// typed nils: (*T)(nil), NavigatorFunc(nil)
	v := reflect.ValueOf(nav)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}
