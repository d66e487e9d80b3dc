// Package module implements the recommendations service module
package module

import (
	"net/http"

	"adloom/internal/modkit"
	"adloom/internal/modkit/httpkit"
	"adloom/internal/modkit/repokit"
	str "adloom/internal/platform/strings"
	boundariesdom "adloom/internal/services/boundaries/domain"
	catalogdom "adloom/internal/services/catalog/domain"
	issuesdom "adloom/internal/services/issues/domain"
	"adloom/internal/services/recommend/domain"
	rechttp "adloom/internal/services/recommend/http"
	"adloom/internal/services/recommend/repo"
	"adloom/internal/services/recommend/service"
)

// Ports exposed by the recommend module
type Ports struct {
	Generator domain.GeneratorPort
	Query     domain.QueryPort
	Reviewer  domain.ReviewerPort
	Resolver  domain.ResolverPort
}

// Wiring carries the cross-module ports the generator needs
type Wiring struct {
	Issues     issuesdom.ReaderPort
	Boundaries boundariesdom.ReaderPort
	Catalog    catalogdom.SnapshotPort
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

// New constructs a new recommend module over the given cross-module wiring
func New(deps modkit.Deps, w Wiring, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("recommend"),
		modkit.WithPrefix(""),
	}, opts...)...)

	mo := FromConfig(deps.Cfg)
	svc := service.New(
		repokit.TxRunner(deps.PG),
		repo.NewPG(),
		w.Issues,
		w.Boundaries,
		w.Catalog,
		service.Config{DefaultMaxResults: mo.DefaultMaxResults},
	)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Generator: svc, Query: svc, Reviewer: svc, Resolver: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		rechttp.Register(r, rechttp.Deps{
			Generator: m.ports.Generator,
			Query:     m.ports.Query,
			Reviewer:  m.ports.Reviewer,
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements modkit.Module
// recommendations mount at the API root; their paths hang off /issues
// and /recommendations
func (m *Module) MountRoutes(r httpkit.Router) {
	for _, mw := range m.mws {
		r.Use(mw)
	}
	rr := r
	if m.subrouter != nil {
		rr = m.subrouter(rr)
	}
	if m.register != nil {
		m.register(rr)
	}
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "recommend") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return m.prefix }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
