package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/moltop/internal/config"
	"github.com/san-kum/moltop/internal/logging"
	"github.com/san-kum/moltop/internal/viz"
)

var (
	// Persistent flags
	dataDir    string
	configFile string
	logLevel   string
	logFormat  string
	output     string
	palette    string
	// Molecule source
	preset   string
	snapshot string
	// export destinations
	outPath string
	svgSize int

	cfg    *config.Config
	logger *slog.Logger
)

// main registers the moltop commands and flags and executes the root
// command, exiting with status 1 on failure.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "moltop",
		Short:             "molecular topology inspector",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&output, "output", config.DefaultOutput, "output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&palette, "palette", config.DefaultPalette, "atom color palette (cpk, mono)")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "summarize a molecule",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showInfo,
	}
	addSourceFlags(infoCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list preset families, or the presets of a family",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	degreesCmd := &cobra.Command{
		Use:   "degrees [file]",
		Short: "plot the bond degree distribution",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotDegrees,
	}
	addSourceFlags(degreesCmd)

	fragmentsCmd := &cobra.Command{
		Use:   "fragments [file]",
		Short: "list connected fragments",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listFragments,
	}
	addSourceFlags(fragmentsCmd)

	pathCmd := &cobra.Command{
		Use:   "path [file] FROM TO",
		Short: "shortest bonded path between two atoms",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  bondPath,
	}
	addSourceFlags(pathCmd)

	linkedCmd := &cobra.Command{
		Use:   "linked [file] ATOM ATOM",
		Short: "check whether the residues of two atoms are bonded",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  residuesLinked,
	}
	addSourceFlags(linkedCmd)

	checkCmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "validate molecule files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  checkFiles,
	}

	saveCmd := &cobra.Command{
		Use:   "save [file]",
		Short: "save a molecule snapshot to the data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  saveSnapshot,
	}
	addSourceFlags(saveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved snapshots",
		Args:  cobra.NoArgs,
		RunE:  listSnapshots,
	}

	showCmd := &cobra.Command{
		Use:   "show [snapshot_id]",
		Short: "show snapshot metadata and bonds",
		Args:  cobra.ExactArgs(1),
		RunE:  showSnapshot,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [file]",
		Short: "export a molecule as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	addSourceFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output path, - for stdout")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [file]",
		Short: "draw the bond graph as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addSourceFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output path, - for stdout")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 400, "image size in pixels")

	browseCmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "browse a molecule interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  browse,
	}
	addSourceFlags(browseCmd)

	rootCmd.AddCommand(infoCmd, presetsCmd, degreesCmd, fragmentsCmd, pathCmd, linkedCmd, checkCmd, saveCmd, listCmd, showCmd, exportJSONCmd, exportSVGCmd, browseCmd)
	return rootCmd
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset molecule (family/name)")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "use a saved snapshot")
}

// setup resolves the configuration (defaults, then the config file, then
// explicitly set flags) and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("output") {
		cfg.Output.Format = output
	}
	if flags.Changed("palette") {
		cfg.Output.Palette = palette
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, ok := viz.GetPalette(cfg.Output.Palette)
	if !ok {
		return fmt.Errorf("unknown palette: %s (available: %v)", cfg.Output.Palette, viz.PaletteNames())
	}
	viz.CurrentPalette = p

	var err error
	logger, err = logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved", "data_dir", cfg.DataDir, "output", cfg.Output.Format, "palette", p.Name)
	return nil
}
