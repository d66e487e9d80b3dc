// Package module implements the catalog service module
package module

import (
	"net/http"

	"adloom/internal/modkit"
	"adloom/internal/modkit/httpkit"
	"adloom/internal/modkit/repokit"
	str "adloom/internal/platform/strings"
	"adloom/internal/services/catalog/domain"
	cathttp "adloom/internal/services/catalog/http"
	"adloom/internal/services/catalog/repo"
	"adloom/internal/services/catalog/service"
)

// Ports exposed by the catalog module
type Ports struct {
	Writer   domain.WriterPort
	Query    domain.QueryPort
	Snapshot domain.SnapshotPort
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

// New constructs a new catalog module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("catalog"),
		modkit.WithPrefix("/catalog"),
	}, opts...)...)

	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Writer: svc, Query: svc, Snapshot: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		cathttp.Register(r, cathttp.Deps{Writer: m.ports.Writer, Query: m.ports.Query})
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
func (m *Module) Name() string { return str.MustString(m.name, "catalog") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
