// Package module implements the issues service module
package module

import (
	"net/http"

	"adloom/internal/modkit"
	"adloom/internal/modkit/httpkit"
	"adloom/internal/modkit/repokit"
	str "adloom/internal/platform/strings"
	"adloom/internal/services/issues/domain"
	ishttp "adloom/internal/services/issues/http"
	"adloom/internal/services/issues/repo"
	"adloom/internal/services/issues/service"
)

// Ports exposed by the issues module
type Ports struct {
	Writer domain.WriterPort
	Reader domain.ReaderPort
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

// New constructs a new issues module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("issues"),
		modkit.WithPrefix(""),
	}, opts...)...)

	mo := FromConfig(deps.Cfg)
	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG(), service.Config{
		MaxKeywords:      mo.MaxKeywords,
		SummarySentences: mo.SummarySentences,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Writer: svc, Reader: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ishttp.Register(r, ishttp.Deps{Writer: m.ports.Writer, Reader: m.ports.Reader})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements modkit.Module
// issues mount at the API root because their paths span two trees
// (/creators/{id}/issues and /issues/{id})
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
func (m *Module) Name() string { return str.MustString(m.name, "issues") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return m.prefix }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
