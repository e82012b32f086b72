package app

import (
	"context"

	"github.com/doeshing/glot-go/internal/application/doctor"
	"github.com/doeshing/glot-go/internal/application/runner"
	"github.com/doeshing/glot-go/internal/application/snippets"
	"github.com/doeshing/glot-go/internal/infrastructure/api"
	"github.com/doeshing/glot-go/internal/infrastructure/cache"
	"github.com/doeshing/glot-go/internal/infrastructure/config"
	"github.com/doeshing/glot-go/internal/infrastructure/history"
	"github.com/doeshing/glot-go/internal/pkg/logger"
	"github.com/doeshing/glot-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
// The UI adapter is attached by the CLI layer after construction.
type Container struct {
	ConfigLoader *config.FileLoader
	API          ports.SnippetService
	Cache        ports.CacheStore
	History      ports.HistoryStore
	Logger       ports.Logger

	Runner   *runner.Service
	Snippets *snippets.Service
	Doctor   *doctor.Service
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	client := api.New(cfg)
	mirror := cache.NewMirror(cfg.CacheDir)

	var historyStore ports.HistoryStore
	if cfg.History.Backend == "file" {
		historyStore = history.NewFileStore("")
	} else {
		historyStore = history.NewSQLiteStore("")
	}

	runnerService := &runner.Service{
		ConfigProvider: cfgLoader,
		API:            client,
		History:        historyStore,
		Logger:         log,
	}
	snippetService := &snippets.Service{
		ConfigProvider: cfgLoader,
		API:            client,
		Cache:          mirror,
		Logger:         log,
	}
	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		API:            client,
		Cache:          mirror,
	}

	return &Container{
		ConfigLoader: cfgLoader,
		API:          client,
		Cache:        mirror,
		History:      historyStore,
		Logger:       log,
		Runner:       runnerService,
		Snippets:     snippetService,
		Doctor:       doctorService,
	}, nil
}

// AttachUI injects the user interface into every flow service.
func (c *Container) AttachUI(ui ports.UserInterface) {
	c.Runner.UI = ui
	c.Snippets.UI = ui
}
