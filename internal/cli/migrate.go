package cli

import (
	"github.com/spf13/cobra"

	"github.com/toyz/compat-migrate/internal/config"
	"github.com/toyz/compat-migrate/internal/javasrc"
	"github.com/toyz/compat-migrate/internal/markup"
	"github.com/toyz/compat-migrate/internal/migrate"
	"github.com/toyz/compat-migrate/internal/utils"
	"github.com/toyz/compat-migrate/internal/utils/fileops"
)

type migrateFlags struct {
	catalogFlags

	encoding string
	jobs     int
	dryRun   bool
}

func (a *app) newMigrateCommand() *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate [project-root]",
		Short: "Rewrite the Java sources and HTML designs of a project",
		Long: `Rewrites every .java file below the project root so that classes which moved
into the compatibility packages are imported from their new location, and
rewrites the component tags and version meta tag of every .html design.
Only files whose content changes are written.`,
		Example: `  compat-migrate migrate -t 8.5.2 ./my-app
  compat-migrate migrate -t 8.5.2 --encoding ISO-8859-1 --jobs 4 .
  compat-migrate migrate -t 8.5.2 --dry-run --verbose .`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMigrate(cmd, projectRoot(args), flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.encoding, "encoding", "e", "", "Character set of the Java sources (default UTF-8)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "Number of files processed in parallel (default 1)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report the files that would change without writing them")

	return cmd
}

func (a *app) runMigrate(cmd *cobra.Command, root string, flags *migrateFlags) error {
	d := a.diagnostics
	d.Section("Compatibility Migration")

	cfg, err := a.loadConfig(root, func(cfg *config.Config) {
		flags.apply(cmd, cfg)
		if cmd.Flags().Changed("encoding") {
			cfg.Encoding = flags.encoding
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Jobs = flags.jobs
		}
	})
	if err != nil {
		return err
	}

	codec, err := fileops.LookupCodec(cfg.Encoding)
	if err != nil {
		return err
	}

	if d.Level() >= utils.DiagnosticVerbose {
		d.Subsection("Configuration")
		d.List("Project root: %s", root)
		d.List("Target version: %s", cfg.Version)
		d.List("Source encoding: %s", codec.Name())
		d.List("Namespace: %s -> %s", cfg.Namespace.Old, cfg.Namespace.New)
		d.List("Jobs: %d", cfg.Jobs)
		if flags.dryRun {
			d.List("Dry run: enabled")
		}
	}

	c, err := a.buildCatalog(cfg)
	if err != nil {
		return err
	}

	migrator := migrate.New(
		migrate.NewOSFiles(),
		javasrc.NewRewriter(c, cfg.Renames()),
		markup.NewRewriter(c.UIClasses(), cfg.Version),
		migrate.Options{
			Codec:  codec,
			Jobs:   cfg.Jobs,
			DryRun: flags.dryRun,
		},
		d,
	)

	report, err := migrator.Run(cmd.Context(), root)
	if err != nil {
		return err
	}

	changedLabel := "Changed files"
	if report.DryRun {
		changedLabel = "Files that would change"
	}
	d.Summary("Migration Summary", []utils.Stat{
		{Label: "Scanned Java files", Value: report.SourceFiles},
		{Label: "Scanned HTML files", Value: report.MarkupFiles},
		{Label: changedLabel, Value: len(report.ChangedFiles)},
	})

	if report.DryRun {
		d.Success("Migration complete, no files were written")
	} else {
		d.Success("Migration complete")
	}
	return nil
}
