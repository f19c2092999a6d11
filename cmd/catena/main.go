package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"catena/internal/category"
	"catena/internal/coerce"
	"catena/internal/config"
	"catena/internal/logging"
	"catena/internal/ring"
)

var (
	// Global flags
	verbose    bool
	configPath string
	ringID     string
	leftID     string
	rightID    string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catena",
	Short: "catena - axiom hierarchy inspector",
	Long: `catena is a diagnostic CLI over the category-hierarchy composition engine.

It builds category nodes (modules, bimodules, hom spaces, ...), resolves
their transitive chains of more-general structures, and shows the generic
operation sets bundle composition would attach to a concrete object.

The engine itself is a library; this tool only calls its outward API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.DebugMode = true
			cfg.Logging.Level = "debug"
		}
		if err := logging.Initialize(logging.Options{
			Debug:      cfg.Logging.DebugMode,
			Level:      cfg.Logging.Level,
			Dir:        cfg.Logging.Dir,
			Categories: cfg.Logging.Categories,
		}); err != nil {
			return err
		}
		logging.Boot("starting (debug=%v, dir=%s)", cfg.Logging.DebugMode, cfg.Logging.Dir)

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
}

// selectNode builds the category node named by arg from the ring flags.
func selectNode(arg string) (category.Node, error) {
	r := ring.Named(ringID)
	switch arg {
	case "modules":
		return category.Modules(r)
	case "left-modules":
		return category.LeftModules(r)
	case "right-modules":
		return category.RightModules(r)
	case "bimodules":
		return category.Bimodules(ring.Named(leftID), ring.Named(rightID))
	case "hom-modules":
		m, err := category.Modules(r)
		if err != nil {
			return category.Node{}, err
		}
		return category.Hom(m)
	case "end-modules":
		m, err := category.Modules(r)
		if err != nil {
			return category.Node{}, err
		}
		return category.End(m)
	case "groups":
		return category.CommutativeAdditiveGroups(), nil
	case "sets":
		return category.Sets(), nil
	case "objects":
		return category.Objects(), nil
	default:
		return category.Node{}, fmt.Errorf("unknown category %q (want modules, left-modules, right-modules, bimodules, hom-modules, end-modules, groups, sets or objects)", arg)
	}
}

// unavailableResolver stands in for the host system's coercion model, which
// is not reachable from the inspector. Listing operations never invokes it.
type unavailableResolver struct{}

func (unavailableResolver) ResolveAndApply(left, right any, op coerce.Op) (any, error) {
	return nil, coerce.ErrNoCommonStructure
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "catena.yaml", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&ringID, "ring", "ZZ", "base ring identity")
	rootCmd.PersistentFlags().StringVar(&leftID, "left", "ZZ", "left ring identity (bimodules)")
	rootCmd.PersistentFlags().StringVar(&rightID, "right", "ZZ", "right ring identity (bimodules)")

	rootCmd.AddCommand(closureCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(ancestorsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
