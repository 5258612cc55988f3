// Package catalog collects the classes that moved into the compatibility
// namespace and answers rename queries about them.
package catalog

import (
	"fmt"
	"strings"

	"github.com/toyz/compat-migrate/internal/archive"
	"github.com/toyz/compat-migrate/internal/errors"
	"github.com/toyz/compat-migrate/internal/models"
)

// ArchiveSet holds the paths of the server, shared and client compatibility archives
type ArchiveSet struct {
	Server string `yaml:"server"`
	Shared string `yaml:"shared"`
	Client string `yaml:"client"`
}

// excludedClient is used in an interface and breaks more code than it fixes when renamed
const excludedClient = "client.ComponentConnector"

// Catalog is the immutable set of renameable classes grouped by origin.
// A Catalog is safe for concurrent reads.
type Catalog struct {
	namespace models.Namespace
	server    models.ClassSet
	shared    models.ClassSet
	client    models.ClassSet
	serverUI  models.ClassSet
	all       models.ClassSet
}

// Build scans the three archives and creates the catalog
func Build(scanner archive.Scanner, archives ArchiveSet, namespace models.Namespace) (*Catalog, error) {
	server, err := scanner.ScanNamespace(archives.Server, namespace.New)
	if err != nil {
		return nil, err
	}
	shared, err := scanner.ScanNamespace(archives.Shared, namespace.New)
	if err != nil {
		return nil, err
	}
	client, err := scanner.ScanNamespace(archives.Client, namespace.New)
	if err != nil {
		return nil, err
	}

	return newCatalog(namespace, server, shared, client), nil
}

// New creates a catalog from already known class names
func New(namespace models.Namespace, server, shared, client []string) *Catalog {
	return newCatalog(namespace,
		models.NewClassSet(server...),
		models.NewClassSet(shared...),
		models.NewClassSet(client...))
}

func newCatalog(namespace models.Namespace, server, shared, client models.ClassSet) *Catalog {
	client = models.Union(client)
	client.Remove(namespace.NewPrefix() + excludedClient)

	uiPrefix := namespace.NewPrefix() + "ui."
	serverUI := server.Filter(func(name string) bool {
		return isDirectChild(name, uiPrefix)
	})

	return &Catalog{
		namespace: namespace,
		server:    server,
		shared:    shared,
		client:    client,
		serverUI:  serverUI,
		all:       models.Union(server, shared, client),
	}
}

// Namespace returns the namespace pair the catalog was built for
func (c *Catalog) Namespace() models.Namespace {
	return c.namespace
}

// Server returns a copy of the server classes
func (c *Catalog) Server() models.ClassSet {
	return models.Union(c.server)
}

// Shared returns a copy of the shared classes
func (c *Catalog) Shared() models.ClassSet {
	return models.Union(c.shared)
}

// Client returns a copy of the client classes
func (c *Catalog) Client() models.ClassSet {
	return models.Union(c.client)
}

// UIClasses returns a copy of the server classes living directly in the ui package,
// such as "com.vaadin.v7.ui.Button"
func (c *Catalog) UIClasses() models.ClassSet {
	return models.Union(c.serverUI)
}

// AllClasses returns a copy of every renameable class
func (c *Catalog) AllClasses() models.ClassSet {
	return models.Union(c.all)
}

// MatchingWildcard returns all classes matching a wildcard import. For example
// "com.vaadin.v7.ui.*" matches "com.vaadin.v7.ui.Field" but not
// "com.vaadin.v7.ui.renderers.ImageRenderer".
func (c *Catalog) MatchingWildcard(wildcard string) (models.ClassSet, error) {
	if !strings.HasPrefix(wildcard, c.namespace.NewPrefix()) {
		return nil, errors.InvalidArgument("wildcard", wildcard,
			fmt.Sprintf("must start with %s", c.namespace.NewPrefix()))
	}
	if !strings.HasSuffix(wildcard, ".*") {
		return nil, errors.InvalidArgument("wildcard", wildcard, "must end with .*")
	}

	pkgPrefix := strings.TrimSuffix(wildcard, "*")
	return c.all.Filter(func(name string) bool {
		return isDirectChild(name, pkgPrefix)
	}), nil
}

// Summary describes the catalog size in one line
func (c *Catalog) Summary() string {
	return fmt.Sprintf("Found %d+%d+%d classes, including %d UI classes",
		c.server.Len(), c.shared.Len(), c.client.Len(), c.serverUI.Len())
}

// isDirectChild reports whether name is pkgPrefix followed by a single identifier
func isDirectChild(name, pkgPrefix string) bool {
	if !strings.HasPrefix(name, pkgPrefix) {
		return false
	}
	rest := strings.TrimPrefix(name, pkgPrefix)
	return rest != "" && !strings.Contains(rest, ".")
}
