// Package locator resolves the compatibility archives of a framework version.
package locator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/compat-migrate/internal/catalog"
	"github.com/toyz/compat-migrate/internal/errors"
)

const (
	DefaultGroup = "com.vaadin"

	ServerArtifact = "vaadin-compatibility-server"
	SharedArtifact = "vaadin-compatibility-shared"
	ClientArtifact = "vaadin-compatibility-client"
)

// Maven finds artifacts in a local Maven repository layout
type Maven struct {
	Repository string
	Group      string
}

// NewMaven creates a locator for the given repository directory. An empty
// repository selects ~/.m2/repository.
func NewMaven(repository string) (*Maven, error) {
	if repository == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.WrapConfigurationError("repository", "resolve", err)
		}
		repository = filepath.Join(home, ".m2", "repository")
	}

	return &Maven{
		Repository: repository,
		Group:      DefaultGroup,
	}, nil
}

// Path returns where the jar of artifact at version is expected
func (m *Maven) Path(artifact, version string) string {
	groupPath := filepath.Join(strings.Split(m.Group, ".")...)
	return filepath.Join(m.Repository, groupPath, artifact, version, artifact+"-"+version+".jar")
}

// Locate returns the path of the jar of artifact at version
func (m *Maven) Locate(artifact, version string) (string, error) {
	path := m.Path(artifact, version)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", errors.NotFound("artifact "+artifact+":"+version, path).
			WithSuggestion("Fetch the artifact into the local repository, e.g. mvn dependency:get -Dartifact=" +
				m.Group + ":" + artifact + ":" + version)
	}

	return path, nil
}

// LocateCompatibility resolves the server, shared and client compatibility
// archives of version
func (m *Maven) LocateCompatibility(version string) (catalog.ArchiveSet, error) {
	return m.Complete(catalog.ArchiveSet{}, version)
}

// Complete fills the archives missing from given with the located ones of
// version. Paths already set are kept as they are.
func (m *Maven) Complete(given catalog.ArchiveSet, version string) (catalog.ArchiveSet, error) {
	archives := given
	for _, slot := range []struct {
		path     *string
		artifact string
	}{
		{&archives.Server, ServerArtifact},
		{&archives.Shared, SharedArtifact},
		{&archives.Client, ClientArtifact},
	} {
		if *slot.path != "" {
			continue
		}
		path, err := m.Locate(slot.artifact, version)
		if err != nil {
			return catalog.ArchiveSet{}, err
		}
		*slot.path = path
	}

	return archives, nil
}
