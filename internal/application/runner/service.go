// Package runner orchestrates remote code execution: gather input, pick a
// version, call the run API, and report the unified output.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doeshing/glot-go/internal/domain"
	"github.com/doeshing/glot-go/internal/ports"
)

// Service runs one execution flow end-to-end.
type Service struct {
	ConfigProvider ports.ConfigProvider
	API            ports.SnippetService
	UI             ports.UserInterface
	History        ports.HistoryStore
	Logger         ports.Logger
}

// Input describes one run. Language is a source token and is normalized
// before lookup. Filename defaults per language when empty. Version
// skips the selection step when set. Interactive enables the stdin and
// command prompts; Stdin/Command pre-fill or (non-interactively) replace
// them.
type Input struct {
	Language    string
	Filename    string
	Content     string
	Version     string
	Interactive bool
	Stdin       string
	Command     string
}

// Run executes the flow. Cancelling any prompt terminates without a
// remote call and without error.
func (s *Service) Run(ctx context.Context, in Input) error {
	if s.ConfigProvider == nil || s.API == nil || s.UI == nil || s.Logger == nil {
		return errors.New("runner.Service dependencies not satisfied")
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.HasToken() {
		return domain.ErrMissingToken
	}

	language := domain.CanonicalLanguage(in.Language)
	versions, ok := cfg.VersionsFor(language)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, language)
	}

	stdin, command := in.Stdin, in.Command
	if in.Interactive {
		defaultCommand, ok := cfg.CommandFor(language)
		if !ok {
			return fmt.Errorf("%w: no command configured for %s", domain.ErrUnsupportedLanguage, language)
		}
		if command == "" {
			command = defaultCommand
		}
		stdin, ok, err = s.UI.Prompt("Stdin", stdin)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		command, ok, err = s.UI.Prompt("Command", command)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	version := in.Version
	if version == "" {
		if len(versions) == 1 {
			version = versions[0]
		} else {
			index, err := s.UI.Pick("Version", versions)
			if err != nil {
				return err
			}
			if index < 0 {
				return nil
			}
			version = versions[index]
		}
	}

	filename := in.Filename
	if filename == "" {
		filename = domain.DefaultFilename(language)
	}

	req := domain.NewRunRequest(language, version, filename, in.Content)
	req.Stdin = stdin
	req.Command = command

	s.UI.Status("running ...")
	start := time.Now()
	result, err := s.API.RunCode(ctx, req)
	s.record(req, result, err, time.Since(start))
	if err != nil {
		return err
	}

	s.UI.Output(result.Combined())
	s.UI.Status("done")
	return nil
}

func (s *Service) record(req domain.RunRequest, result domain.RunResult, runErr error, elapsed time.Duration) {
	if s.History == nil {
		return
	}
	rec := domain.RunRecord{
		Timestamp:  time.Now(),
		Language:   req.Language,
		Version:    req.Version,
		Command:    req.Command,
		OutputSize: len(result.Combined()),
		DurationMS: elapsed.Milliseconds(),
	}
	if len(req.Files) > 0 {
		rec.Filename = req.Files[0].Name
	}
	if runErr != nil {
		rec.Failed = true
		rec.Error = runErr.Error()
	}
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}
