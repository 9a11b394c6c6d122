package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jdbryant/mospath/internal/store"
)

var (
	cfgFile string
	config  *viper.Viper
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mospath",
	Short: "Military-to-civilian career matching in your terminal",
	Long: "MOSPath — terminal app for transitioning service members: take a mini\n" +
		"adaptive aptitude quiz, build a candidate profile, and rank civilian\n" +
		"positions against your background.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		l, err := newLogger()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default $XDG_CONFIG_HOME/mospath/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MOSPATH_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig builds the viper instance: defaults, then the config file,
// then MOSPATH_* environment variables.
func initConfig() error {
	v := viper.New()

	v.SetDefault("quiz.threshold", 2)
	v.SetDefault("quiz.questions", 10)
	v.SetDefault("quiz.seconds_per_question", 30)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("MOSPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if confDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(confDir, "mospath"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	config = v
	return nil
}

// newLogger builds a zap logger writing to a file. The TUI owns the
// terminal, so nothing may log to stdout or stderr.
func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(config.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", config.GetString("log.level"), err)
	}

	path := config.GetString("log.file")
	if path == "" {
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve home dir: %w", err)
			}
			stateHome = filepath.Join(home, ".local", "state")
		}
		path = filepath.Join(stateHome, "mospath", "mospath.log")
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then MOSPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
