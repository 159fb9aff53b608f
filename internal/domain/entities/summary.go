package entities

import "time"

// RunSummary reports the outcome of one pipeline run.
type RunSummary struct {
	GeneratedAt  time.Time           `yaml:"generated_at"`
	RepoRoot     string              `yaml:"repo_directory"`
	Repositories []RepositorySummary `yaml:"repositories"`
	Failures     []FailureSummary    `yaml:"failures,omitempty"`
}

// RepositorySummary describes the outputs written for one repository.
type RepositorySummary struct {
	Provider     string `yaml:"provider"`
	Organization string `yaml:"organization"`
	Name         string `yaml:"name"`
	Files        int    `yaml:"files"`
	Digest       string `yaml:"digest,omitempty"`
	Listing      string `yaml:"listing"`
	Statements   string `yaml:"statements"`
}

// FailureSummary records a repository that could not be processed.
type FailureSummary struct {
	Repository string `yaml:"repository"`
	Error      string `yaml:"error"`
}

// Failed reports whether at least one repository failed.
func (s *RunSummary) Failed() bool {
	return len(s.Failures) > 0
}
