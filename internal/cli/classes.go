package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toyz/compat-migrate/internal/catalog"
	"github.com/toyz/compat-migrate/internal/config"
	"github.com/toyz/compat-migrate/internal/models"
)

type classesFlags struct {
	catalogFlags

	category string
	wildcard string
}

func (a *app) newClassesCommand() *cobra.Command {
	flags := &classesFlags{}

	cmd := &cobra.Command{
		Use:   "classes [project-root]",
		Short: "List the classes that are renamed into the compatibility packages",
		Example: `  compat-migrate classes -t 8.5.2
  compat-migrate classes -t 8.5.2 --category ui
  compat-migrate classes -t 8.5.2 --wildcard com.vaadin.v7.ui.*`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClasses(cmd, projectRoot(args), flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.category, "category", "all", "Classes to list: all, server, shared, client or ui")
	cmd.Flags().StringVarP(&flags.wildcard, "wildcard", "w", "", "List the classes a wildcard import such as com.vaadin.v7.ui.* expands to")

	return cmd
}

func (a *app) runClasses(cmd *cobra.Command, root string, flags *classesFlags) error {
	cfg, err := a.loadConfig(root, func(cfg *config.Config) {
		flags.apply(cmd, cfg)
	})
	if err != nil {
		return err
	}

	c, err := a.buildCatalog(cfg)
	if err != nil {
		return err
	}

	var classes models.ClassSet
	if flags.wildcard != "" {
		if classes, err = c.MatchingWildcard(flags.wildcard); err != nil {
			return err
		}
	} else if classes, err = classesOf(c, flags.category); err != nil {
		return err
	}

	for _, name := range classes.Sorted() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func classesOf(c *catalog.Catalog, category string) (models.ClassSet, error) {
	switch category {
	case "all":
		return c.AllClasses(), nil
	case "server":
		return c.Server(), nil
	case "shared":
		return c.Shared(), nil
	case "client":
		return c.Client(), nil
	case "ui":
		return c.UIClasses(), nil
	default:
		return nil, unknownCategory(category)
	}
}
