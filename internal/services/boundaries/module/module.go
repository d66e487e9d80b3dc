// Package module implements the boundaries service module
package module

import (
	"net/http"

	"adloom/internal/modkit"
	"adloom/internal/modkit/httpkit"
	"adloom/internal/modkit/repokit"
	str "adloom/internal/platform/strings"
	"adloom/internal/services/boundaries/domain"
	bhttp "adloom/internal/services/boundaries/http"
	"adloom/internal/services/boundaries/repo"
	"adloom/internal/services/boundaries/service"
)

// Ports exposed by the boundaries module
type Ports struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
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

// New constructs a new boundaries module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("boundaries"),
		modkit.WithPrefix(""),
	}, opts...)...)

	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Reader: svc, Writer: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		bhttp.Register(r, bhttp.Deps{Reader: m.ports.Reader, Writer: m.ports.Writer})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements modkit.Module
// boundaries mount at the API root; the creator id rides in the path and
// other modules share the /creators tree
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
func (m *Module) Name() string { return str.MustString(m.name, "boundaries") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return m.prefix }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
