package repositories

// HasherRepository computes content digests.
type HasherRepository interface {
	// HashFile returns the hex SHA-256 of the file content.
	HashFile(path string) (string, error)

	// TreeDigest returns an "h1:" digest over the given files, named by their
	// slash-separated paths relative to root.
	TreeDigest(root string, relativePaths []string) (string, error)
}
