package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/glot-go/internal/domain"
	"github.com/doeshing/glot-go/internal/pkg/logger"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubAPI struct {
	runResult domain.RunResult
	runErr    error
	runCalls  []domain.RunRequest
	calls     int
}

func (s *stubAPI) ListSnippets(context.Context) ([]domain.Snippet, error) {
	s.calls++
	return nil, nil
}

func (s *stubAPI) GetSnippet(context.Context, string) (domain.Snippet, error) {
	s.calls++
	return domain.Snippet{}, nil
}

func (s *stubAPI) CreateSnippet(context.Context, domain.SnippetDraft) (domain.Snippet, error) {
	s.calls++
	return domain.Snippet{}, nil
}

func (s *stubAPI) UpdateSnippet(context.Context, string, domain.SnippetDraft) (domain.Snippet, error) {
	s.calls++
	return domain.Snippet{}, nil
}

func (s *stubAPI) DeleteSnippet(context.Context, string) error {
	s.calls++
	return nil
}

func (s *stubAPI) RunCode(_ context.Context, req domain.RunRequest) (domain.RunResult, error) {
	s.calls++
	s.runCalls = append(s.runCalls, req)
	return s.runResult, s.runErr
}

type stubUI struct {
	pickIndex   int
	pickErr     error
	pickedItems [][]string
	answers     []string // consumed by Prompt; "\x00" cancels
	prompts     []string
	statuses    []string
	outputs     []string
}

func (s *stubUI) Pick(label string, items []string) (int, error) {
	s.pickedItems = append(s.pickedItems, items)
	return s.pickIndex, s.pickErr
}

func (s *stubUI) Prompt(label, def string) (string, bool, error) {
	s.prompts = append(s.prompts, label)
	if len(s.answers) == 0 {
		return def, true, nil
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	if answer == "\x00" {
		return "", false, nil
	}
	if answer == "" {
		return def, true, nil
	}
	return answer, true, nil
}

func (s *stubUI) Status(msg string)  { s.statuses = append(s.statuses, msg) }
func (s *stubUI) Output(text string) { s.outputs = append(s.outputs, text) }

type memHistory struct {
	records []domain.RunRecord
}

func (m *memHistory) Save(rec domain.RunRecord) error { m.records = append(m.records, rec); return nil }
func (m *memHistory) Records(int) ([]domain.RunRecord, error) {
	return m.records, nil
}
func (m *memHistory) Clear() error { m.records = nil; return nil }

func testService(cfg domain.Config, api *stubAPI, ui *stubUI, hist *memHistory) *Service {
	return &Service{
		ConfigProvider: stubConfigProvider{cfg: cfg},
		API:            api,
		UI:             ui,
		History:        hist,
		Logger:         logger.NewStd(false),
	}
}

func runConfig() domain.Config {
	return domain.Config{
		Token: "secret",
		Languages: map[string][]string{
			"python": {"2", "latest"},
			"go":     {"1.21"},
		},
		Commands: map[string]string{
			"python": "python main.py",
		},
	}
}

func TestRunSingleVersionSkipsSelection(t *testing.T) {
	api := &stubAPI{runResult: domain.RunResult{Stdout: "A", Stderr: "B", Error: "C"}}
	ui := &stubUI{}
	svc := testService(runConfig(), api, ui, &memHistory{})

	err := svc.Run(context.Background(), Input{Language: "go", Content: "package main"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(ui.pickedItems) != 0 {
		t.Error("version picker shown for a single configured version")
	}
	if len(api.runCalls) != 1 {
		t.Fatalf("RunCode calls = %d, want 1", len(api.runCalls))
	}
	req := api.runCalls[0]
	if req.Version != "1.21" {
		t.Errorf("version = %q, want 1.21", req.Version)
	}
	if req.Files[0].Name != "main.go" {
		t.Errorf("filename = %q, want default main.go", req.Files[0].Name)
	}
	if len(ui.outputs) != 1 || ui.outputs[0] != "ABC" {
		t.Errorf("outputs = %v, want exactly [ABC]", ui.outputs)
	}
}

func TestRunMultipleVersionsPrompts(t *testing.T) {
	api := &stubAPI{}
	ui := &stubUI{pickIndex: 1}
	svc := testService(runConfig(), api, ui, &memHistory{})

	err := svc.Run(context.Background(), Input{Language: "python", Content: "print(1)"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(ui.pickedItems) != 1 || len(ui.pickedItems[0]) != 2 {
		t.Fatalf("picker items = %v, want the 2 configured versions", ui.pickedItems)
	}
	if api.runCalls[0].Version != "latest" {
		t.Errorf("version = %q, want latest (index 1)", api.runCalls[0].Version)
	}
}

func TestRunCancelledSelectionIssuesNoCalls(t *testing.T) {
	api := &stubAPI{}
	ui := &stubUI{pickIndex: -1}
	svc := testService(runConfig(), api, ui, &memHistory{})

	if err := svc.Run(context.Background(), Input{Language: "python", Content: "x"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if api.calls != 0 {
		t.Errorf("API calls = %d, want 0 after cancellation", api.calls)
	}
}

func TestRunMissingTokenIssuesNoCalls(t *testing.T) {
	cfg := runConfig()
	cfg.Token = ""
	api := &stubAPI{}
	svc := testService(cfg, api, &stubUI{}, &memHistory{})

	err := svc.Run(context.Background(), Input{Language: "go", Content: "x"})
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Errorf("err = %v, want ErrMissingToken", err)
	}
	if api.calls != 0 {
		t.Errorf("API calls = %d, want 0", api.calls)
	}
}

func TestRunUnsupportedLanguage(t *testing.T) {
	svc := testService(runConfig(), &stubAPI{}, &stubUI{}, &memHistory{})

	err := svc.Run(context.Background(), Input{Language: "cobol", Content: "x"})
	if !errors.Is(err, domain.ErrUnsupportedLanguage) {
		t.Errorf("err = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestRunNormalizesSourceToken(t *testing.T) {
	cfg := runConfig()
	cfg.Languages["javascript"] = []string{"latest"}
	api := &stubAPI{}
	svc := testService(cfg, api, &stubUI{}, &memHistory{})

	if err := svc.Run(context.Background(), Input{Language: "js", Content: "1"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if api.runCalls[0].Language != "javascript" {
		t.Errorf("language = %q, want javascript", api.runCalls[0].Language)
	}
}

func TestInteractiveRunPromptsForStdinAndCommand(t *testing.T) {
	api := &stubAPI{}
	ui := &stubUI{pickIndex: 0, answers: []string{"42", ""}}
	svc := testService(runConfig(), api, ui, &memHistory{})

	err := svc.Run(context.Background(), Input{
		Language:    "python",
		Content:     "print(input())",
		Interactive: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(ui.prompts) != 2 || ui.prompts[0] != "Stdin" || ui.prompts[1] != "Command" {
		t.Fatalf("prompts = %v", ui.prompts)
	}
	req := api.runCalls[0]
	if req.Stdin != "42" {
		t.Errorf("stdin = %q", req.Stdin)
	}
	if req.Command != "python main.py" {
		t.Errorf("command = %q, want configured default", req.Command)
	}
}

func TestInteractiveRunCancelledPromptIssuesNoCalls(t *testing.T) {
	api := &stubAPI{}
	ui := &stubUI{answers: []string{"\x00"}}
	svc := testService(runConfig(), api, ui, &memHistory{})

	if err := svc.Run(context.Background(), Input{Language: "python", Content: "x", Interactive: true}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if api.calls != 0 {
		t.Errorf("API calls = %d, want 0", api.calls)
	}
}

func TestInteractiveRunRequiresConfiguredCommand(t *testing.T) {
	svc := testService(runConfig(), &stubAPI{}, &stubUI{}, &memHistory{})

	err := svc.Run(context.Background(), Input{Language: "go", Content: "x", Interactive: true})
	if !errors.Is(err, domain.ErrUnsupportedLanguage) {
		t.Errorf("err = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestRunRecordsHistory(t *testing.T) {
	hist := &memHistory{}
	api := &stubAPI{runResult: domain.RunResult{Stdout: "ok"}}
	svc := testService(runConfig(), api, &stubUI{}, hist)

	if err := svc.Run(context.Background(), Input{Language: "go", Content: "x"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(hist.records) != 1 {
		t.Fatalf("records = %d, want 1", len(hist.records))
	}
	rec := hist.records[0]
	if rec.Language != "go" || rec.Failed || rec.OutputSize != 2 {
		t.Errorf("record = %+v", rec)
	}
}

func TestRunRecordsFailure(t *testing.T) {
	hist := &memHistory{}
	api := &stubAPI{runErr: &domain.APIError{StatusCode: 500, Message: "boom"}}
	svc := testService(runConfig(), api, &stubUI{}, hist)

	err := svc.Run(context.Background(), Input{Language: "go", Content: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(hist.records) != 1 || !hist.records[0].Failed {
		t.Errorf("records = %+v, want one failed record", hist.records)
	}
}
