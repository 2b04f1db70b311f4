package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhuels/depscout/pkg/config"
	"github.com/mhuels/depscout/pkg/integrations/github"
	"github.com/mhuels/depscout/pkg/integrations/npm"
	"github.com/mhuels/depscout/pkg/manifest"
	"github.com/mhuels/depscout/pkg/report"
	"github.com/mhuels/depscout/pkg/updates"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	jsonOut      bool   // emit the structured report instead of a table
	manifestOnly bool   // ignore the lockfile even when present
	interactive  bool   // browse records in a TUI list
	configPath   string // priority config location override
	output       string // write the JSON report to a file
}

// checkCommand creates the check command, the core depscout run.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check a project's dependencies for available updates",
		Long: `Check a project's dependencies for available updates.

Reads package.json (and package-lock.json when present) from the given
directory, queries the npm registry for the latest published versions, and
prints the outdated dependencies ranked by the size of the version jump.
Packages listed in depscout.json are reported in a separate priority section.

Examples:
  depscout check                   # Check the current directory
  depscout check ./frontend        # Check another project
  depscout check --json            # Structured output
  depscout check --manifest-only   # Ignore the lockfile`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runCheck(cmd.Context(), dir, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&opts.manifestOnly, "manifest-only", false, "resolve versions from package.json only, ignoring the lockfile")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse updates interactively")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "priority config path (default <dir>/depscout.json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the JSON report to a file")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, dir string, opts checkOpts) error {
	spin := newSpinnerWithContext(ctx, "Checking registry for updates...")
	if !opts.jsonOut {
		spin.Start()
	}

	rep, err := buildReport(ctx, c.Logger, dir, opts.manifestOnly, opts.configPath)
	if err != nil {
		if !opts.jsonOut {
			spin.StopWithError("Update check failed")
		}
		return err
	}
	if !opts.jsonOut {
		spin.Stop()
	}

	if !opts.jsonOut && !opts.manifestOnly && rep.ResolutionMode == string(manifest.ModeManifest) {
		printWarning("no usable lockfile, comparing against declared version ranges")
	}

	if opts.output != "" {
		if err := writeReportFile(rep, opts.output); err != nil {
			return err
		}
		printSuccess("Report written to %s", opts.output)
	}

	switch {
	case opts.jsonOut:
		return rep.WriteJSON(os.Stdout)
	case opts.interactive:
		return browseReport(rep)
	default:
		renderReport(os.Stdout, rep)
		return nil
	}
}

// buildReport runs the whole pipeline: load inputs, select the resolution
// mode, detect updates concurrently, rank and partition. Shared by the
// check command and the serve endpoint.
func buildReport(ctx context.Context, logger *charmlog.Logger, dir string, manifestOnly bool, configPath string) (*report.Report, error) {
	settings, err := config.LoadSettings(dir)
	if err != nil {
		logger.Warnf("ignoring tool settings: %v", err)
		settings = config.Settings{}
	}

	m, err := manifest.LoadManifest(filepath.Join(dir, manifest.DefaultManifestName))
	if err != nil {
		return nil, err
	}

	warnf := func(format string, args ...any) { logger.Warnf(format, args...) }

	var lock *manifest.Lockfile
	if !manifestOnly {
		lock, err = manifest.LoadLockfile(filepath.Join(dir, manifest.DefaultLockName))
		if err != nil {
			logger.Debugf("no usable lockfile in %s, resolving from declared ranges", dir)
			lock = nil
		}
	}

	current, mode := manifest.CurrentVersions(m, lock, warnf)
	logger.Debugf("resolved %d dependencies in %s mode", len(current), mode)

	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(dir, config.PriorityName)
	}
	priority, created, err := config.LoadPriority(cfgPath)
	if err != nil {
		return nil, err
	}
	if created {
		logger.Infof("created default priority config: %s", cfgPath)
	}

	docs := updates.NewDocResolver(github.NewClient(settings.GitHubAPIURL, settings.GitHubToken), warnf)
	detector := updates.NewDetector(npm.NewClient(settings.RegistryURL), docs, warnf)
	detector.Concurrency = settings.Concurrency

	p := newProgress(logger)
	records := detector.Detect(ctx, current)
	p.done(fmt.Sprintf("Checked %d packages, %d updates", len(current), len(records)))

	updates.Rank(records)
	prioritized, others := updates.Partition(records, updates.NewPrioritySet(priority.PriorityPackages))

	return report.New(string(mode), prioritized, others), nil
}

func writeReportFile(rep *report.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return rep.WriteJSON(f)
}
