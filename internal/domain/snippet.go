package domain

import "time"

// SnippetFile is a single named source file inside a snippet. Snippets in
// this client always carry exactly one file.
type SnippetFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Snippet is the remote-owned resource as returned by the snippets API.
// Files is populated only by GetSnippet; list responses omit it.
type Snippet struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Language  string        `json:"language"`
	Public    bool          `json:"public"`
	Owner     string        `json:"owner,omitempty"`
	URL       string        `json:"url,omitempty"`
	FilesHash string        `json:"files_hash,omitempty"`
	Created   time.Time     `json:"created,omitempty"`
	Modified  time.Time     `json:"modified,omitempty"`
	Files     []SnippetFile `json:"files,omitempty"`
}

// File returns the snippet's single file.
func (s Snippet) File() (SnippetFile, bool) {
	if len(s.Files) == 0 {
		return SnippetFile{}, false
	}
	return s.Files[0], true
}

// SnippetDraft is the client-side input for create/update. The API client
// expands it into the wire body {language, title, public, files: [...]}.
type SnippetDraft struct {
	Language string
	Title    string
	Filename string
	Content  string
	Public   bool
}

// RunRequest describes one remote code execution. Language and Version
// select the endpoint and are not part of the JSON body. Stdin and
// Command are omitted from the body entirely when empty.
type RunRequest struct {
	Language string        `json:"-"`
	Version  string        `json:"-"`
	Files    []SnippetFile `json:"files"`
	Stdin    string        `json:"stdin,omitempty"`
	Command  string        `json:"command,omitempty"`
}

// NewRunRequest builds a single-file run request.
func NewRunRequest(language, version, filename, content string) RunRequest {
	return RunRequest{
		Language: language,
		Version:  version,
		Files:    []SnippetFile{{Name: filename, Content: content}},
	}
}

// RunResult is the run API response. Fields beyond these three are
// ignored.
type RunResult struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Error  string `json:"error"`
}

// Combined returns the unified output text. The stdout, stderr, error
// ordering is a contract: errors always trail normal output, and no
// separators are injected.
func (r RunResult) Combined() string {
	return r.Stdout + r.Stderr + r.Error
}
