// Package migrate runs the source and markup rewriters over a project tree.
package migrate

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/toyz/compat-migrate/internal/javasrc"
	"github.com/toyz/compat-migrate/internal/markup"
	"github.com/toyz/compat-migrate/internal/utils"
	"github.com/toyz/compat-migrate/internal/utils/fileops"
)

const (
	SourceSuffix = ".java"
	MarkupSuffix = ".html"
)

// Options configures a Migrator
type Options struct {
	// Codec decodes source files; markup files are always UTF-8
	Codec *fileops.Codec

	// Jobs bounds the number of files processed at once
	Jobs int

	// DryRun reports changes without writing them
	DryRun bool
}

// Report summarizes a migration run
type Report struct {
	RunID        uuid.UUID
	SourceFiles  int
	MarkupFiles  int
	ChangedFiles []string
	DryRun       bool
}

// Migrator rewrites the files of a project tree
type Migrator struct {
	files       Files
	source      *javasrc.Rewriter
	markup      *markup.Rewriter
	options     Options
	diagnostics *utils.DiagnosticSystem
}

// run is the state of one Run call
type run struct {
	mu     sync.Mutex
	report *Report
}

// New creates a migrator
func New(files Files, source *javasrc.Rewriter, markup *markup.Rewriter, options Options, diagnostics *utils.DiagnosticSystem) *Migrator {
	if options.Codec == nil {
		options.Codec = fileops.UTF8
	}
	if options.Jobs < 1 {
		options.Jobs = 1
	}

	return &Migrator{
		files:       files,
		source:      source,
		markup:      markup,
		options:     options,
		diagnostics: diagnostics,
	}
}

// Run migrates every source and markup file below root. The first failure
// stops the run; files rewritten before it stay rewritten. Concurrent runs
// on different roots are allowed.
func (m *Migrator) Run(ctx context.Context, root string) (*Report, error) {
	r := &run{report: &Report{
		RunID:  uuid.New(),
		DryRun: m.options.DryRun,
	}}
	m.diagnostics.Verbose("Migration run %s in %s", r.report.RunID, root)

	var err error
	if m.options.Jobs == 1 {
		err = m.files.Walk(root, func(path string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return m.migrateFile(r, path)
		})
	} else {
		err = m.runParallel(ctx, r, root)
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(r.report.ChangedFiles)
	return r.report, nil
}

func (m *Migrator) runParallel(ctx context.Context, r *run, root string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.options.Jobs)

	walkErr := m.files.Walk(root, func(path string) error {
		if err := gctx.Err(); err != nil {
			return err
		}
		g.Go(func() error {
			return m.migrateFile(r, path)
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return walkErr
}

// migrateFile rewrites one file and writes it back only if it changed
func (m *Migrator) migrateFile(r *run, path string) error {
	var codec *fileops.Codec
	var rewrite func(string) string

	switch {
	case strings.HasSuffix(path, SourceSuffix):
		codec = m.options.Codec
		rewrite = func(text string) string {
			return m.source.Rewrite(javasrc.NewDocument(text)).String()
		}
		r.count(&r.report.SourceFiles)
	case strings.HasSuffix(path, MarkupSuffix):
		codec = fileops.UTF8
		rewrite = func(text string) string {
			return m.markup.Rewrite(markup.NewDocument(text)).String()
		}
		r.count(&r.report.MarkupFiles)
	default:
		return nil
	}

	raw, err := m.files.ReadFile(path)
	if err != nil {
		return err
	}
	original, err := codec.Decode(path, raw)
	if err != nil {
		return err
	}

	migrated := rewrite(original)
	if migrated == original {
		r.mu.Lock()
		m.diagnostics.Debug("Unchanged %s", path)
		r.mu.Unlock()
		return nil
	}

	if !m.options.DryRun {
		data, err := codec.Encode(path, migrated)
		if err != nil {
			return err
		}
		if err := m.files.WriteFile(path, data); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.report.ChangedFiles = append(r.report.ChangedFiles, path)
	m.diagnostics.FileChanged(path, m.options.DryRun)
	r.mu.Unlock()

	return nil
}

func (r *run) count(counter *int) {
	r.mu.Lock()
	*counter++
	r.mu.Unlock()
}
