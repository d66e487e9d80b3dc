// Package api provides the HTTP API for the application
package api

import (
	"adloom/internal/platform/config"
	"adloom/internal/platform/logger"
	phttp "adloom/internal/platform/net/http"
	"adloom/internal/platform/store"

	"adloom/internal/modkit"
	"adloom/internal/modkit/httpkit"
	"adloom/internal/modkit/module"
	"adloom/internal/modkit/swaggerkit"

	metamod "adloom/internal/services/api/meta/module"
	boundariesmod "adloom/internal/services/boundaries/module"
	catalogmod "adloom/internal/services/catalog/module"
	issuesmod "adloom/internal/services/issues/module"
	recommendmod "adloom/internal/services/recommend/module"
	trackmod "adloom/internal/services/track/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// storage-owning modules first; recommend and track consume their ports
	issues := issuesmod.New(deps)
	boundaries := boundariesmod.New(deps)
	catalog := catalogmod.New(deps)

	recommend := recommendmod.New(deps, recommendmod.Wiring{
		Issues:     module.MustPortsOf[issuesmod.Ports](issues).Reader,
		Boundaries: module.MustPortsOf[boundariesmod.Ports](boundaries).Reader,
		Catalog:    module.MustPortsOf[catalogmod.Ports](catalog).Snapshot,
	})

	track := trackmod.New(deps, trackmod.Wiring{
		Resolver: module.MustPortsOf[recommendmod.Ports](recommend).Resolver,
	})

	mods := []module.Module{
		metamod.New(deps),
		issues,
		boundaries,
		catalog,
		recommend,
		track,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
