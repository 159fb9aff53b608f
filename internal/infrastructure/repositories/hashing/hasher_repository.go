package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/mod/sumdb/dirhash"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

// HasherRepository hashes files with SHA-256, reading chunkSize bytes at a time.
type HasherRepository struct {
	chunkSize int
}

var _ repositories.HasherRepository = (*HasherRepository)(nil)

// NewHasherRepository creates a hasher with the given chunk size. Non-positive
// sizes fall back to entities.DefaultHashChunkSize.
func NewHasherRepository(chunkSize int) *HasherRepository {
	if chunkSize <= 0 {
		chunkSize = entities.DefaultHashChunkSize
	}
	return &HasherRepository{chunkSize: chunkSize}
}

// ChunkSize returns the read buffer size.
func (it *HasherRepository) ChunkSize() int {
	return it.chunkSize
}

// HashFile streams the file through SHA-256 and returns the lowercase hex digest.
func (it *HasherRepository) HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	hash := sha256.New()
	buf := make([]byte, it.chunkSize)
	for {
		n, readErr := file.Read(buf)
		if n > 0 {
			_, _ = hash.Write(buf[:n]) // hash.Hash never returns an error
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return "", fmt.Errorf("failed to read %q: %w", path, readErr)
		}
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// TreeDigest returns the dirhash "h1:" digest of the given files.
func (it *HasherRepository) TreeDigest(root string, relativePaths []string) (string, error) {
	digest, err := dirhash.Hash1(relativePaths, func(name string) (io.ReadCloser, error) {
		return os.Open(filepath.Join(root, filepath.FromSlash(name)))
	})
	if err != nil {
		return "", fmt.Errorf("failed to compute tree digest of %q: %w", root, err)
	}
	return digest, nil
}
