package navbar

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// Component renders the markup as a <nav> with one link per element.
func (m *Markup) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<nav class="`)
		sb.WriteString(templ.EscapeString(m.navClass))
		sb.WriteString(`"><div class="nav-links">`)
		for _, e := range m.Elements {
			writeLink(&sb, e, m.linkClass, m.activateURL)
		}
		sb.WriteString(`</div></nav>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func writeLink(sb *strings.Builder, e Element, class, activateURL string) {
	sb.WriteString(`<a class="`)
	sb.WriteString(templ.EscapeString(class))
	sb.WriteString(`" href="`)
	sb.WriteString(templ.EscapeString(e.Path))
	sb.WriteString(`"`)
	if activateURL != "" {
		sb.WriteString(` hx-post="`)
		sb.WriteString(templ.EscapeString(activateURL + "?" + url.Values{"path": {e.Path}}.Encode()))
		sb.WriteString(`"`)
	}
	if e.Active {
		sb.WriteString(` aria-current="page"`)
	}
	sb.WriteString(`>`)
	sb.WriteString(templ.EscapeString(e.Label))
	sb.WriteString(`</a>`)
}
