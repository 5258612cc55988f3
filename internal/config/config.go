package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/toyz/compat-migrate/internal/catalog"
	"github.com/toyz/compat-migrate/internal/errors"
	"github.com/toyz/compat-migrate/internal/models"
	"github.com/toyz/compat-migrate/internal/utils"
)

// FileName is the config file looked up in the project root
const FileName = "compat-migrate.yaml"

// Config holds the settings of one migration run
type Config struct {
	// Version is the target framework version, e.g. "8.5.2"
	Version string `yaml:"version"`

	// Encoding is the character set of source files. Markup files are always UTF-8.
	Encoding string `yaml:"encoding"`

	// Repository is the local Maven repository used to find the archives
	Repository string `yaml:"repository"`

	// Archives overrides the located compatibility archives
	Archives catalog.ArchiveSet `yaml:"archives"`

	Namespace models.Namespace `yaml:"namespace"`

	// SpecialRenames are added to the built-in special renames
	SpecialRenames models.SpecialRenames `yaml:"special_renames"`

	// Jobs is the number of files processed in parallel
	Jobs int `yaml:"jobs"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Encoding:  "UTF-8",
		Namespace: models.DefaultNamespace(),
		Jobs:      1,
	}
}

// Load reads the config file at path on top of the defaults. With an empty
// path the project root is searched for FileName and a missing file yields
// the defaults. The returned string is the file that was read, if any.
func Load(path, projectRoot string) (*Config, string, error) {
	cfg := Default()

	if path == "" {
		candidate := filepath.Join(projectRoot, FileName)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return cfg, "", nil
		} else if err != nil {
			return nil, "", errors.WrapConfigurationError(candidate, "read", err)
		}
		path = candidate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.NotFound("config file", path)
		}
		return nil, "", errors.WrapConfigurationError(path, "read", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, "", errors.WrapConfigurationError(path, "parse", err)
	}

	return cfg, path, nil
}

// Renames returns the built-in special renames merged with the configured ones
func (c *Config) Renames() models.SpecialRenames {
	return models.DefaultSpecialRenames().Merge(c.SpecialRenames)
}

// HasArchives reports whether all three archives are given explicitly
func (c *Config) HasArchives() bool {
	return c.Archives.Server != "" && c.Archives.Shared != "" && c.Archives.Client != ""
}

// Validate checks the configuration and collects every problem. Warnings
// describe settings that are accepted but suspicious.
func (c *Config) Validate() (warnings []string, err error) {
	var multi *errors.MultipleErrors
	add := func(e error) {
		if e != nil {
			errors.AddToMultiple(&multi, e.(errors.MigrationError))
		}
	}

	add(utils.NewValidatorChain[string](utils.NotEmpty("version"), validVersion).Validate(c.Version))
	add(utils.NotEmpty("encoding")(c.Encoding))
	add(utils.AtLeast("jobs", 1)(c.Jobs))

	add(utils.IsQualifiedName("namespace.old")(c.Namespace.Old))
	add(utils.NewValidatorChain(
		utils.IsQualifiedName("namespace.new"),
		utils.Custom("namespace.new", fmt.Sprintf("must live below the old namespace %q", c.Namespace.Old),
			func(ns string) bool { return strings.HasPrefix(ns, c.Namespace.Old+".") }),
	).Validate(c.Namespace.New))

	for _, from := range c.SpecialRenames.Keys() {
		add(utils.IsQualifiedName("special_renames."+from)(from))
		add(utils.IsQualifiedName("special_renames."+from)(c.SpecialRenames[from]))
	}

	if c.Version != "" && !semver.IsValid(canonicalVersion(c.Version)) {
		warnings = append(warnings, fmt.Sprintf("version %q is not a semantic version, the archives must exist under that exact name", c.Version))
	}

	return warnings, multi.ErrOrNil()
}

// validVersion rejects semantic versions below 8; the version meta tags
// being rewritten are the ones of 7.x
func validVersion(version string) error {
	v := canonicalVersion(version)
	if semver.IsValid(v) && semver.Compare(semver.Major(v), "v8") < 0 {
		return errors.ConfigurationError("version", fmt.Sprintf("target version %s must be 8 or later", version))
	}
	return nil
}

func canonicalVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
