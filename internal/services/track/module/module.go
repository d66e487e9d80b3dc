// Package module implements the track service module
package module

import (
	"net/http"

	"adloom/internal/modkit"
	"adloom/internal/modkit/httpkit"
	str "adloom/internal/platform/strings"
	recdom "adloom/internal/services/recommend/domain"
	"adloom/internal/services/track/domain"
	trackhttp "adloom/internal/services/track/http"
	"adloom/internal/services/track/repo"
	"adloom/internal/services/track/service"
)

// Ports exposed by the track module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Wiring carries the cross-module ports tracking needs
type Wiring struct {
	Resolver recdom.ResolverPort
}

// Module implements modkit.Module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs a new track module
func New(deps modkit.Deps, w Wiring, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("track"),
		modkit.WithPrefix("/track"),
	}, opts...)...)

	svc := service.New(repo.NewCH(deps.CH), w.Resolver)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Writer: svc, Query: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		trackhttp.Register(r, trackhttp.Deps{Writer: m.ports.Writer, Query: m.ports.Query})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "track") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
