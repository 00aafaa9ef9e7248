package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	internal "github.com/ZanzyTHEbar/xtag/xtag"
	"github.com/ZanzyTHEbar/xtag/xtag/config"
	"github.com/ZanzyTHEbar/xtag/xtag/digest"
	"github.com/ZanzyTHEbar/xtag/xtag/scan"
	"github.com/ZanzyTHEbar/xtag/xtag/xa"
)

// Version metadata set by main at build time.
var (
	Version = "dev"
	Commit  = "none"
)

var (
	configFile string
	algorithm  string
	checkFlag  bool
	forceFlag  bool
	dryRunFlag bool
	printFlag  bool
	recursive  bool
	untagFlag  bool
	quietCount int
	verbCount  int

	// exitCode carries the aggregated per-path result out of RunE, since
	// cobra errors only distinguish success from usage failure.
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   internal.DefaultAppName + " [flags] FILE...",
	Short: "Display and update xattr-based checksums",
	Long: `xtag pairs each file's content hash with its last-modification time and
stores both as extended attributes. On later runs it compares the stored
values against fresh ones and reports each file as OK, NEW, OUTDATED,
BACKDATED, CORRUPT, or INVALID, which makes silently flipped bits on
archival storage visible before the last good backup ages out.

Timestamps written by older, less precise tools are honored with relaxed
comparison, and tags are compatible with the shatag family of utilities.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVar(&configFile, "config", "", "Path to config file (default: "+internal.DefaultConfigFile+")")
	flags.StringVarP(&algorithm, "algorithm", "a", "", "Hash algorithm to use (default: "+internal.DefaultAlgorithm+")")
	flags.BoolVarP(&checkFlag, "check", "c", false, "Check the hashes on all specified files")
	flags.BoolVarP(&forceFlag, "force", "f", false, "Update the stored hashes for backdated, corrupted, or invalid files")
	flags.BoolVarP(&dryRunFlag, "dry-run", "n", false, "Don't update any stored attributes")
	flags.BoolVarP(&printFlag, "print", "p", false, "Print the hashes of all specified files")
	flags.BoolVarP(&recursive, "recursive", "r", false, "Process directories and their contents (not just files)")
	flags.BoolVar(&untagFlag, "untag", false, "Remove the stored attributes from the specified files")
	flags.CountVarP(&quietCount, "quiet", "q", "Only print errors (including checksum failures)")
	flags.CountVarP(&verbCount, "verbose", "v", "Print all statuses (repeat for stored/actual detail)")

	// One selector flag per algorithm, original-CLI style.
	for _, name := range digest.Names() {
		flags.Bool(name, false, "Use the "+name+" hash algorithm")
	}
	flags.Bool("blake2", false, "Alias for --blake2b512")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	logger := internal.GetLogger()
	rootCmd.Version = fmt.Sprintf("%s (commit %s)", Version, Commit)

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("run failed")
		return 1
	}
	return exitCode
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	mergeFlags(cmd, &cfg.XTag)

	alg, err := digest.ByName(cfg.XTag.Algorithm)
	if err != nil {
		return err
	}

	if cfg.XTag.Verbosity >= 2 {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	opts := &scan.Options{
		Check:     cfg.XTag.Check,
		Force:     cfg.XTag.Force,
		DryRun:    cfg.XTag.DryRun,
		Print:     cfg.XTag.Print,
		Recursive: cfg.XTag.Recursive,
		Untag:     untagFlag,
		Verbosity: cfg.XTag.Verbosity,
	}

	rep := scan.NewReporter(os.Stdout, os.Stderr, opts.Verbosity)

	if opts.DryRun && opts.Force {
		rep.Warnf("Warning: --dry-run takes precedence over --force.")
	}

	store := xa.NewStore(cfg.XTag.Namespace)
	proc := scan.NewProcessor(store, alg, opts, rep)
	walker := scan.NewWalker(proc, opts, rep, cfg.XTag.IgnoreFile)

	for _, arg := range args {
		code := walker.Process(trimTrailingSlashes(arg))

		if code < 0 {
			// Fatal: abort the remaining paths, keep what we have.
			break
		}
		if exitCode == 0 && code > 0 {
			exitCode = code
		}
	}

	return nil
}

// mergeFlags lets explicitly set command-line flags override config values.
func mergeFlags(cmd *cobra.Command, cfg *config.XTagConfig) {
	flags := cmd.Flags()

	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	for _, name := range append(digest.Names(), "blake2") {
		if flags.Changed(name) {
			cfg.Algorithm = name
		}
	}

	if flags.Changed("check") {
		cfg.Check = checkFlag
	}
	if flags.Changed("force") {
		cfg.Force = forceFlag
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = dryRunFlag
	}
	if flags.Changed("print") {
		cfg.Print = printFlag
	}
	if flags.Changed("recursive") {
		cfg.Recursive = recursive
	}

	cfg.Verbosity += verbCount - quietCount
}

// trimTrailingSlashes drops trailing path separators from a command-line
// argument, normalizing "dir/" to "dir" while keeping the root "/" intact.
func trimTrailingSlashes(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
