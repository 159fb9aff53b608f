package repositories

// ProviderRepository resolves which Git hosting provider a clone belongs to.
type ProviderRepository interface {
	// ResolveProvider returns the provider name (e.g. "github", "gitlab") of
	// the clone at repoPath. The boolean is false when it cannot be told.
	ResolveProvider(repoPath string) (string, bool)
}
