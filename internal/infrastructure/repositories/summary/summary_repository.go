package summary

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// SummaryRepository stores the run summary as YAML.
type SummaryRepository struct{}

var _ repositories.SummaryRepository = (*SummaryRepository)(nil)

// NewSummaryRepository creates a new SummaryRepository.
func NewSummaryRepository() *SummaryRepository {
	return &SummaryRepository{}
}

// Write marshals summary and overwrites the file at path.
func (it *SummaryRepository) Write(path string, summary *entities.RunSummary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	if mkErr := os.MkdirAll(filepath.Dir(path), dirPerm); mkErr != nil {
		return fmt.Errorf("failed to create %q: %w", filepath.Dir(path), mkErr)
	}

	if writeErr := os.WriteFile(path, data, filePerm); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	return nil
}

// Read loads a summary previously written by Write.
func (it *SummaryRepository) Read(path string) (*entities.RunSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var summary entities.RunSummary
	if unmarshalErr := yaml.Unmarshal(data, &summary); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, unmarshalErr)
	}
	return &summary, nil
}
