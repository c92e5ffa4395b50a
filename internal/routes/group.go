package routes

import "net/http"

// Group represents a collection of routes with a common prefix.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
}

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// With returns a copy of the group whose handlers are wrapped by mw.
func (g Group) With(mw func(http.HandlerFunc) http.HandlerFunc) Group {
	wrapped := make([]Route, len(g.Routes))
	for i, route := range g.Routes {
		route.Handler = mw(route.Handler)
		wrapped[i] = route
	}
	return Group{Prefix: g.Prefix, Description: g.Description, Routes: wrapped}
}
