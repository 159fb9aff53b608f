package git

import (
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

const (
	originRemote = "origin"

	providerGitHub      = "github"
	providerGitLab      = "gitlab"
	providerAzureDevOps = "azuredevops"
	providerBitbucket   = "bitbucket"
)

// RemoteInfo holds the parsed components of a Git remote URL.
type RemoteInfo struct {
	ProviderType string
	Org          string
	RepoName     string
}

// Matches reports whether the remote names the given organization and
// repository, ignoring case.
func (r *RemoteInfo) Matches(org, name string) bool {
	return strings.EqualFold(r.Org, org) && strings.EqualFold(r.RepoName, name)
}

// ProviderRepository reads the origin remote of a clone with go-git.
type ProviderRepository struct{}

var _ repositories.ProviderRepository = (*ProviderRepository)(nil)

// NewProviderRepository creates a new ProviderRepository.
func NewProviderRepository() *ProviderRepository {
	return &ProviderRepository{}
}

// ResolveProvider opens the clone and maps its origin URL to a provider name.
func (it *ProviderRepository) ResolveProvider(repoPath string) (string, bool) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		logger.Debugf("Cannot open %s as a git repository: %v", repoPath, err)
		return "", false
	}

	remote, err := repo.Remote(originRemote)
	if err != nil {
		logger.Debugf("No %s remote in %s: %v", originRemote, repoPath, err)
		return "", false
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", false
	}

	info, err := ParseRemoteURL(urls[0])
	if err != nil {
		logger.Debugf("Unrecognized remote in %s: %v", repoPath, err)
		return "", false
	}

	org, name := filepath.Base(filepath.Dir(repoPath)), filepath.Base(repoPath)
	if !info.Matches(org, name) {
		logger.Warnf("Clone %s/%s points at %s/%s on %s", org, name, info.Org, info.RepoName, info.ProviderType)
	}

	return info.ProviderType, true
}

// ParseRemoteURL extracts provider, org and repo name from a Git remote URL.
// Azure DevOps projects are skipped.
func ParseRemoteURL(rawURL string) (*RemoteInfo, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), ".git")

	switch {
	case strings.Contains(cleaned, "dev.azure.com"), strings.Contains(cleaned, "visualstudio.com"):
		return parseAzureDevOpsURL(cleaned)
	case strings.Contains(cleaned, "github.com"):
		return parseStandardGitURL(cleaned, "github.com", providerGitHub)
	case strings.Contains(cleaned, "gitlab.com"):
		return parseStandardGitURL(cleaned, "gitlab.com", providerGitLab)
	case strings.Contains(cleaned, "bitbucket.org"):
		return parseStandardGitURL(cleaned, "bitbucket.org", providerBitbucket)
	}

	return nil, fmt.Errorf("unsupported git remote URL: %s", rawURL)
}

func parseAzureDevOpsURL(url string) (*RemoteInfo, error) {
	if strings.HasPrefix(url, "git@") && strings.Contains(url, ":v3/") {
		_, pathPart, _ := strings.Cut(url, ":v3/")
		parts := strings.Split(pathPart, "/")
		if len(parts) >= 3 { //nolint:mnd // org/project/repo
			return &RemoteInfo{
				ProviderType: providerAzureDevOps,
				Org:          parts[0],
				RepoName:     parts[2],
			}, nil
		}
		return nil, fmt.Errorf("invalid Azure DevOps SSH URL: %s", url)
	}

	parts := strings.Split(url, "/")
	for i, p := range parts {
		if p == "_git" && i+1 < len(parts) && i >= 2 {
			return &RemoteInfo{
				ProviderType: providerAzureDevOps,
				Org:          parts[i-2],
				RepoName:     parts[i+1],
			}, nil
		}
	}

	return nil, fmt.Errorf("invalid Azure DevOps URL: %s", url)
}

// parseStandardGitURL handles both scp-like (git@host:org/repo) and URL forms.
func parseStandardGitURL(url, hostname, provider string) (*RemoteInfo, error) {
	var pathPart string

	if strings.HasPrefix(url, "git@") {
		_, after, ok := strings.Cut(url, ":")
		if !ok {
			return nil, fmt.Errorf("invalid SSH URL: %s", url)
		}
		pathPart = after
	} else {
		_, after, ok := strings.Cut(url, hostname)
		if !ok {
			return nil, fmt.Errorf("hostname %s not found in URL: %s", hostname, url)
		}
		pathPart = strings.TrimPrefix(strings.TrimPrefix(after, ":"), "/")
	}

	segments := strings.Split(pathPart, "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" { //nolint:mnd // need org + repo
		return nil, fmt.Errorf("cannot extract org/repo from URL: %s", url)
	}

	return &RemoteInfo{ProviderType: provider, Org: segments[0], RepoName: segments[1]}, nil
}
