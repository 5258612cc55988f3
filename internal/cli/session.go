package cli

import (
	"github.com/spf13/cobra"

	"github.com/toyz/compat-migrate/internal/archive"
	"github.com/toyz/compat-migrate/internal/catalog"
	"github.com/toyz/compat-migrate/internal/config"
	"github.com/toyz/compat-migrate/internal/errors"
	"github.com/toyz/compat-migrate/internal/locator"
)

// catalogFlags are the flags selecting the archives and namespaces a catalog is built from
type catalogFlags struct {
	version      string
	repository   string
	server       string
	shared       string
	client       string
	oldNamespace string
	newNamespace string
}

func (f *catalogFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.version, "target-version", "t", "", "Framework 8 version to migrate to, e.g. 8.5.2")
	flags.StringVar(&f.repository, "repository", "", "Local Maven repository holding the compatibility archives (default ~/.m2/repository)")
	flags.StringVar(&f.server, "server-jar", "", "Path of the compatibility server archive")
	flags.StringVar(&f.shared, "shared-jar", "", "Path of the compatibility shared archive")
	flags.StringVar(&f.client, "client-jar", "", "Path of the compatibility client archive")
	flags.StringVar(&f.oldNamespace, "old-namespace", "", "Package prefix classes are moved out of (default com.vaadin)")
	flags.StringVar(&f.newNamespace, "new-namespace", "", "Package prefix classes are moved into (default com.vaadin.v7)")
}

// apply overrides cfg with the flags given on the command line
func (f *catalogFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	override := func(name string, target *string, value string) {
		if changed(name) {
			*target = value
		}
	}

	override("target-version", &cfg.Version, f.version)
	override("repository", &cfg.Repository, f.repository)
	override("server-jar", &cfg.Archives.Server, f.server)
	override("shared-jar", &cfg.Archives.Shared, f.shared)
	override("client-jar", &cfg.Archives.Client, f.client)
	override("old-namespace", &cfg.Namespace.Old, f.oldNamespace)
	override("new-namespace", &cfg.Namespace.New, f.newNamespace)
}

// loadConfig reads the configuration of the project at root, applies the
// command line overrides and validates the result
func (a *app) loadConfig(root string, override func(*config.Config)) (*config.Config, error) {
	cfg, source, err := config.Load(a.configPath, root)
	if err != nil {
		return nil, err
	}
	if source != "" {
		a.diagnostics.Verbose("Using config file %s", source)
	}

	override(cfg)

	warnings, err := cfg.Validate()
	for _, warning := range warnings {
		a.diagnostics.Warn("%s", warning)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildCatalog locates the archives missing from cfg and scans all three
func (a *app) buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	archives := cfg.Archives
	if !cfg.HasArchives() {
		maven, err := locator.NewMaven(cfg.Repository)
		if err != nil {
			return nil, err
		}
		if archives == (catalog.ArchiveSet{}) {
			archives, err = maven.LocateCompatibility(cfg.Version)
		} else {
			archives, err = maven.Complete(archives, cfg.Version)
		}
		if err != nil {
			return nil, err
		}
	}

	a.diagnostics.Verbose("Server archive: %s", archives.Server)
	a.diagnostics.Verbose("Shared archive: %s", archives.Shared)
	a.diagnostics.Verbose("Client archive: %s", archives.Client)

	c, err := catalog.Build(archive.NewJarScanner(), archives, cfg.Namespace)
	if err != nil {
		return nil, err
	}
	a.diagnostics.Info("%s", c.Summary())

	return c, nil
}

// projectRoot returns the optional project directory argument
func projectRoot(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

// unknownCategory reports a category the classes command does not know
func unknownCategory(category string) error {
	return errors.InvalidArgument("category", category, "must be one of all, server, shared, client or ui")
}
