// Package navbar declares a navigation bar as an ordered table of links and renders it
// server-side. Links are validated once at construction, rendered as templ components,
// and activated through a [Navigator], which for HTTP requests answers with htmx
// navigation headers.
package navbar
