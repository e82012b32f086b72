package doctor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/doeshing/glot-go/internal/domain"
	"github.com/doeshing/glot-go/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	API            ports.SnippetService
	Cache          ports.CacheStore
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", "loaded"))

	if cfg.HasToken() {
		checks = append(checks, ok("API token", "configured"))
	} else {
		checks = append(checks, warn("API token", "not set; remote commands are disabled"))
	}

	if len(cfg.Languages) > 0 {
		checks = append(checks, ok("Languages", fmt.Sprintf("%d configured", len(cfg.Languages))))
	} else {
		checks = append(checks, warn("Languages", "none configured"))
	}

	if s.Cache != nil {
		if err := os.MkdirAll(s.Cache.Root(), 0o755); err != nil {
			checks = append(checks, fail("Snippet cache", err.Error()))
		} else {
			checks = append(checks, ok("Snippet cache", s.Cache.Root()))
		}
	}

	checks = append(checks, s.apiCheck(ctx, cfg))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) apiCheck(ctx context.Context, cfg domain.Config) domain.HealthCheck {
	if !cfg.HasToken() {
		return warn("Snippets API", "skipped (no token)")
	}
	if s.API == nil {
		return warn("Snippets API", "client not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	snippets, err := s.API.ListSnippets(ctx)
	if err != nil {
		return fail("Snippets API", err.Error())
	}
	return ok("Snippets API", fmt.Sprintf("reachable, %d snippets", len(snippets)))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthFail, Details: details}
}
