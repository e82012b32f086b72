// Package snippets orchestrates the snippet flows: open, new, push
// (update), and delete, including the local cache round-trips.
package snippets

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/doeshing/glot-go/internal/domain"
	"github.com/doeshing/glot-go/internal/ports"
)

// Service coordinates snippet flows against the remote API and the local
// mirror.
type Service struct {
	ConfigProvider ports.ConfigProvider
	API            ports.SnippetService
	Cache          ports.CacheStore
	UI             ports.UserInterface
	Logger         ports.Logger
}

// NewInput describes the document a new snippet is created from.
// HasPath distinguishes a real file (filename already fixed) from
// unnamed stdin content (filename is prompted for).
type NewInput struct {
	Language string
	Filename string
	Content  string
	Title    string
	HasPath  bool
}

func (s *Service) check() error {
	if s.ConfigProvider == nil || s.API == nil || s.Cache == nil || s.UI == nil || s.Logger == nil {
		return errors.New("snippets.Service dependencies not satisfied")
	}
	return nil
}

func (s *Service) loadGated(ctx context.Context) (domain.Config, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.Config{}, fmt.Errorf("load config: %w", err)
	}
	if !cfg.HasToken() {
		return domain.Config{}, domain.ErrMissingToken
	}
	return cfg, nil
}

// List returns the remote snippet summaries.
func (s *Service) List(ctx context.Context) ([]domain.Snippet, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if _, err := s.loadGated(ctx); err != nil {
		return nil, err
	}
	return s.API.ListSnippets(ctx)
}

// Open lets the user pick a remote snippet, mirrors it locally without
// overwriting an existing copy, and returns the local path. An empty
// path means the user cancelled.
func (s *Service) Open(ctx context.Context) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	if _, err := s.loadGated(ctx); err != nil {
		return "", err
	}

	summaries, err := s.API.ListSnippets(ctx)
	if err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		s.UI.Status("no snippets")
		return "", nil
	}

	index, err := s.UI.Pick("Snippet", pickItems(summaries))
	if err != nil {
		return "", err
	}
	if index < 0 {
		return "", nil
	}

	snippet, err := s.API.GetSnippet(ctx, summaries[index].ID)
	if err != nil {
		return "", err
	}
	file, ok := snippet.File()
	if !ok {
		return "", fmt.Errorf("snippet %s has no files", snippet.ID)
	}

	path, err := s.Cache.EnsureLocalCopy(snippet.ID, file.Name, file.Content)
	if err != nil {
		return "", err
	}
	s.UI.Status("opened snippet " + snippet.Title)
	return path, nil
}

// New creates a remote snippet from the given content, mirrors it into
// the cache under the server-assigned id, and returns the cached path.
// The cache write happens only after the server confirms the create.
func (s *Service) New(ctx context.Context, in NewInput) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	cfg, err := s.loadGated(ctx)
	if err != nil {
		return "", err
	}

	language := domain.CanonicalLanguage(in.Language)
	if _, ok := cfg.VersionsFor(language); !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, language)
	}

	name := in.Filename
	if !in.HasPath {
		def := name
		if def == "" {
			def = domain.DefaultFilename(language)
		}
		var ok bool
		name, ok, err = s.UI.Prompt("Filename", def)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", nil
		}
	}

	title := in.Title
	if title == "" {
		var ok bool
		title, ok, err = s.UI.Prompt("Title", "Untitled")
		if err != nil {
			return "", err
		}
		if !ok {
			return "", nil
		}
	}

	s.UI.Status("sending file ...")
	snippet, err := s.API.CreateSnippet(ctx, domain.SnippetDraft{
		Language: language,
		Title:    title,
		Filename: name,
		Content:  in.Content,
		Public:   true,
	})
	if err != nil {
		return "", err
	}

	path, err := s.Cache.EnsureLocalCopy(snippet.ID, name, in.Content)
	if err != nil {
		return "", err
	}
	s.UI.Status("saved snippet " + title)
	return path, nil
}

// Push updates the remote snippet a cached file belongs to. The fresh
// list check catches snippets deleted remotely since they were opened;
// pushing over a deleted snippet would silently recreate lost state, so
// it fails with domain.ErrStaleSnippet instead.
func (s *Service) Push(ctx context.Context, path, content string) error {
	if err := s.check(); err != nil {
		return err
	}
	cfg, err := s.loadGated(ctx)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	id, name, ok := s.Cache.ResolveIDAndFilename(abs)
	if !ok {
		return fmt.Errorf("%s is not a cached snippet", path)
	}

	language, ok := domain.DetectLanguage(name)
	if !ok {
		return fmt.Errorf("%w: cannot detect language of %s", domain.ErrUnsupportedLanguage, name)
	}
	if _, ok := cfg.VersionsFor(language); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, language)
	}

	summaries, err := s.API.ListSnippets(ctx)
	if err != nil {
		return err
	}
	currentTitle := ""
	found := false
	for _, summary := range summaries {
		if summary.ID == id {
			currentTitle = summary.Title
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrStaleSnippet, id)
	}

	title, ok, err := s.UI.Prompt("Title", currentTitle)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if _, err := s.API.UpdateSnippet(ctx, id, domain.SnippetDraft{
		Language: language,
		Title:    title,
		Filename: name,
		Content:  content,
		Public:   true,
	}); err != nil {
		return err
	}
	s.UI.Status("saved snippet " + title)
	return nil
}

// Delete lets the user pick a snippet, removes its local mirror (best
// effort), then deletes it remotely.
func (s *Service) Delete(ctx context.Context) error {
	if err := s.check(); err != nil {
		return err
	}
	if _, err := s.loadGated(ctx); err != nil {
		return err
	}

	summaries, err := s.API.ListSnippets(ctx)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		s.UI.Status("no snippets")
		return nil
	}

	index, err := s.UI.Pick("Snippet", pickItems(summaries))
	if err != nil {
		return err
	}
	if index < 0 {
		return nil
	}
	chosen := summaries[index]

	// Cache cleanliness is not a correctness requirement: log and move on.
	if err := s.Cache.DeleteLocalCopy(chosen.ID); err != nil {
		s.Logger.Warn("local cache delete failed", map[string]interface{}{
			"id":    chosen.ID,
			"error": err.Error(),
		})
	}

	s.UI.Status("deleting snippet ...")
	if err := s.API.DeleteSnippet(ctx, chosen.ID); err != nil {
		return err
	}
	s.UI.Status("deleted snippet " + chosen.Title)
	return nil
}

func pickItems(summaries []domain.Snippet) []string {
	items := make([]string, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, fmt.Sprintf("%s (%s)", summary.Title, summary.Language))
	}
	return items
}
