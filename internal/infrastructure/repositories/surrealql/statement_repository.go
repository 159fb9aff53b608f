package surrealql

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

const (
	extension   = ".surql"
	dirPerm     = 0o755
	filePerm    = 0o644
	repoTable   = "repo"
	fileTable   = "file"
	timestampFn = "time::now()"
)

// StatementRepository renders SurrealQL scripts: one UPSERT for the
// repository followed by one CREATE per relevant file, keyed by content hash.
type StatementRepository struct{}

var _ repositories.StatementRepository = (*StatementRepository)(nil)

// NewStatementRepository creates a new StatementRepository.
func NewStatementRepository() *StatementRepository {
	return &StatementRepository{}
}

// Prepare creates dir if it does not exist.
func (it *StatementRepository) Prepare(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create statement directory %q: %w", dir, err)
	}
	return nil
}

// Write truncates and rewrites the script of repo.
func (it *StatementRepository) Write(
	dir string,
	repo entities.Repository,
	digest string,
	records []entities.FileRecord,
) (string, error) {
	path := filepath.Join(dir, repo.OutputStem()+extension)

	var script strings.Builder
	script.WriteString(RepositoryStatement(repo, digest, len(records)))
	for _, record := range records {
		script.WriteString("\n")
		script.WriteString(FileStatement(repo, record))
	}

	if err := os.WriteFile(path, []byte(script.String()), filePerm); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}
	return path, nil
}

// RepositoryReference renders the array-keyed record id of a repository,
// e.g. repo:['github', 'acme', 'widgets'].
func RepositoryReference(repo entities.Repository) string {
	parts := make([]string, 0, 3) //nolint:mnd // provider, org, name
	for _, part := range repo.Key() {
		parts = append(parts, QuoteString(part))
	}
	return fmt.Sprintf("%s:[%s]", repoTable, strings.Join(parts, ", "))
}

// FileReference renders the record id of a file, derived from its content hash.
func FileReference(record entities.FileRecord) string {
	return fileTable + ":" + QuoteIdent(record.Hash)
}

// RepositoryStatement renders the UPSERT that registers the repository.
func RepositoryStatement(repo entities.Repository, digest string, fileCount int) string {
	digestValue := "NONE"
	if digest != "" {
		digestValue = QuoteString(digest)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "UPSERT %s CONTENT {\n", RepositoryReference(repo))
	fmt.Fprintf(&b, "    provider: %s,\n", QuoteString(repo.Provider))
	fmt.Fprintf(&b, "    organization: %s,\n", QuoteString(repo.Organization))
	fmt.Fprintf(&b, "    name: %s,\n", QuoteString(repo.Name))
	fmt.Fprintf(&b, "    digest: %s,\n", digestValue)
	fmt.Fprintf(&b, "    file_count: %d,\n", fileCount)
	fmt.Fprintf(&b, "    ingested_at: %s\n", timestampFn)
	b.WriteString("};\n")
	return b.String()
}

// FileStatement renders the CREATE of one relevant file.
func FileStatement(repo entities.Repository, record entities.FileRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE %s CONTENT {\n", FileReference(record))
	fmt.Fprintf(&b, "    repo: %s,\n", RepositoryReference(repo))
	fmt.Fprintf(&b, "    path: %s,\n", QuoteString(record.RelativePath))
	fmt.Fprintf(&b, "    extension: %s,\n", QuoteString(record.Extension))
	fmt.Fprintf(&b, "    filename: %s,\n", QuoteString(record.Filename))
	fmt.Fprintf(&b, "    hash: %s,\n", QuoteString(record.Hash))
	fmt.Fprintf(&b, "    ingested_at: %s\n", timestampFn)
	b.WriteString("};\n")
	return b.String()
}
