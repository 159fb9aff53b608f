package entities

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/ini.v1"
)

const (
	DefaultRepoDirectory   = "./cloned_repos"
	DefaultOutputDirectory = "./output"
	DefaultProvider        = "github"
	DefaultHashChunkSize   = 64 * 1024

	// DefaultConfigFile is read when no --config flag is given and nothing is auto-detected.
	DefaultConfigFile = "config.ini"

	listingSubdirectory   = "repos"
	statementSubdirectory = "surql"
	summaryFilename       = "summary.yaml"

	filtersSection    = "FileFilters"
	filtersBlock      = "file_filters"
	keyRepoDirectory  = "repo_directory"
	keyOutputDir      = "output_directory"
	keyHashChunkSize  = "hash_chunk_size"
	keyProvider       = "provider"
	keyIrrelevantExts = "irrelevant_extensions"
	keyIrrelevantName = "irrelevant_filenames"
	keyIrrelevantDirs = "irrelevant_folders"
)

var (
	// ErrMissingFilter is returned when one of the FileFilters keys is absent.
	ErrMissingFilter = errors.New("missing file filter")

	// ErrNoFileFilters is returned when an HCL config has no file_filters block.
	ErrNoFileFilters = errors.New("missing file_filters block")
)

// Settings is the process-wide configuration, loaded once per invocation.
type Settings struct {
	RepoDirectory   string      `yaml:"repo_directory"`
	OutputDirectory string      `yaml:"output_directory"`
	HashChunkSize   int         `yaml:"hash_chunk_size"`
	Provider        string      `yaml:"provider"`
	Filters         FileFilters `yaml:"file_filters"`
}

// SettingsLoader loads settings from a config file path.
type SettingsLoader func(path string) (*Settings, error)

// NewSettings loads the settings file at path. Files ending in ".hcl" are
// parsed as HCL; everything else is read as INI.
func NewSettings(path string) (*Settings, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return loadHCLSettings(path)
	}
	return loadINISettings(path)
}

// ListingDirectory is where the plain path listings are written.
func (s *Settings) ListingDirectory() string {
	return filepath.Join(s.OutputDirectory, listingSubdirectory)
}

// StatementDirectory is where the SurrealQL scripts are written.
func (s *Settings) StatementDirectory() string {
	return filepath.Join(s.OutputDirectory, statementSubdirectory)
}

// SummaryPath is the location of the run summary report.
func (s *Settings) SummaryPath() string {
	return filepath.Join(s.OutputDirectory, summaryFilename)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}
	patterns := []string{
		"config.ini",
		"repocatalog.ini",
		"repocatalog.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func defaultSettings() *Settings {
	return &Settings{
		RepoDirectory:   DefaultRepoDirectory,
		OutputDirectory: DefaultOutputDirectory,
		HashChunkSize:   DefaultHashChunkSize,
		Provider:        DefaultProvider,
	}
}

// loadINISettings reads the INI format. A missing file leaves the directory
// defaults in place, but the FileFilters keys are always required.
func loadINISettings(path string) (*Settings, error) {
	//nolint:exhaustruct // only Loose is relevant here
	file, err := ini.LoadSources(ini.LoadOptions{Loose: true}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	settings := defaultSettings()

	defaults := file.Section(ini.DefaultSection)
	settings.RepoDirectory = defaults.Key(keyRepoDirectory).MustString(DefaultRepoDirectory)
	settings.OutputDirectory = defaults.Key(keyOutputDir).MustString(DefaultOutputDirectory)
	if defaults.HasKey(keyHashChunkSize) {
		chunkSize, intErr := defaults.Key(keyHashChunkSize).Int()
		if intErr != nil {
			return nil, fmt.Errorf("invalid %s in %q: %w", keyHashChunkSize, path, intErr)
		}
		settings.HashChunkSize = chunkSize
	}
	settings.Provider = defaults.Key(keyProvider).MustString(DefaultProvider)

	filters := file.Section(filtersSection)
	lists := make(map[string][]string, 3) //nolint:mnd // three filter lists
	for _, name := range []string{keyIrrelevantExts, keyIrrelevantName, keyIrrelevantDirs} {
		key, keyErr := filters.GetKey(name)
		if keyErr != nil {
			return nil, fmt.Errorf("%w: %s.%s in %q", ErrMissingFilter, filtersSection, name, path)
		}
		lists[name] = SplitList(key.String())
	}
	settings.Filters = FileFilters{
		Extensions: lists[keyIrrelevantExts],
		Filenames:  lists[keyIrrelevantName],
		Folders:    lists[keyIrrelevantDirs],
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// loadHCLSettings reads the HCL format:
//
//	repo_directory = "./cloned_repos"
//	file_filters {
//	  irrelevant_extensions = [".lock"]
//	  ...
//	}
func loadHCLSettings(path string) (*Settings, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, diags)
	}

	content, diags := file.Body.Content(&hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: keyRepoDirectory},
			{Name: keyOutputDir},
			{Name: keyHashChunkSize},
			{Name: keyProvider},
		},
		Blocks: []hcl.BlockHeaderSchema{
			{Type: filtersBlock},
		},
	})
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid config file %q: %w", path, diags)
	}

	settings := defaultSettings()
	var err error
	for name, attr := range content.Attributes {
		value, valueDiags := attr.Expr.Value(nil)
		if valueDiags.HasErrors() {
			return nil, fmt.Errorf("invalid value for %q: %w", name, valueDiags)
		}

		switch name {
		case keyRepoDirectory:
			settings.RepoDirectory, err = ctyString(name, value)
		case keyOutputDir:
			settings.OutputDirectory, err = ctyString(name, value)
		case keyProvider:
			settings.Provider, err = ctyString(name, value)
		case keyHashChunkSize:
			settings.HashChunkSize, err = ctyInt(name, value)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(content.Blocks) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoFileFilters, path)
	}

	filters, err := decodeHCLFilters(content.Blocks[0])
	if err != nil {
		return nil, err
	}
	settings.Filters = filters

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

func decodeHCLFilters(block *hcl.Block) (FileFilters, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return FileFilters{}, fmt.Errorf("invalid %s block: %w", filtersBlock, diags)
	}

	lists := make(map[string][]string, 3) //nolint:mnd // three filter lists
	for _, name := range []string{keyIrrelevantExts, keyIrrelevantName, keyIrrelevantDirs} {
		attr, ok := attrs[name]
		if !ok {
			return FileFilters{}, fmt.Errorf("%w: %s.%s", ErrMissingFilter, filtersBlock, name)
		}

		value, valueDiags := attr.Expr.Value(nil)
		if valueDiags.HasErrors() {
			return FileFilters{}, fmt.Errorf("invalid value for %q: %w", name, valueDiags)
		}

		list, err := ctyStringList(name, value)
		if err != nil {
			return FileFilters{}, err
		}
		lists[name] = list
	}

	return FileFilters{
		Extensions: lists[keyIrrelevantExts],
		Filenames:  lists[keyIrrelevantName],
		Folders:    lists[keyIrrelevantDirs],
	}, nil
}

func ctyString(name string, value cty.Value) (string, error) {
	if value.IsNull() || value.Type() != cty.String {
		return "", fmt.Errorf("%q must be a string", name)
	}
	return value.AsString(), nil
}

func ctyInt(name string, value cty.Value) (int, error) {
	if value.IsNull() || value.Type() != cty.Number {
		return 0, fmt.Errorf("%q must be a number", name)
	}
	n, accuracy := value.AsBigFloat().Int64()
	if accuracy != big.Exact {
		return 0, fmt.Errorf("%q must be a whole number", name)
	}
	return int(n), nil
}

func ctyStringList(name string, value cty.Value) ([]string, error) {
	if value.IsNull() || !(value.Type().IsListType() || value.Type().IsTupleType()) {
		return nil, fmt.Errorf("%q must be a list of strings", name)
	}

	list := make([]string, 0, value.LengthInt())
	for it := value.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() || elem.Type() != cty.String {
			return nil, fmt.Errorf("%q must only contain strings", name)
		}
		if s := strings.TrimSpace(elem.AsString()); s != "" {
			list = append(list, s)
		}
	}
	return list, nil
}

// SplitList splits a comma separated config value, trimming blanks and
// dropping empty items.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if settings.RepoDirectory == "" {
		return fmt.Errorf("%s must not be empty", keyRepoDirectory)
	}
	if settings.OutputDirectory == "" {
		return fmt.Errorf("%s must not be empty", keyOutputDir)
	}
	if settings.HashChunkSize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", keyHashChunkSize, settings.HashChunkSize)
	}
	if settings.Provider == "" {
		return fmt.Errorf("%s must not be empty", keyProvider)
	}
	return nil
}
