package domain

import "time"

// RunRecord captures one remote code execution for the local history.
type RunRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Language   string    `json:"language"`
	Version    string    `json:"version"`
	Filename   string    `json:"filename"`
	Command    string    `json:"command,omitempty"`
	OutputSize int       `json:"output_size"`
	Failed     bool      `json:"failed"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
}
