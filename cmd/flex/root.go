package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-flex/internal/debug"
)

// config holds the CLI settings after merging file, environment and flags.
type config struct {
	Log    logConfig    `mapstructure:"log"`
	Layout layoutConfig `mapstructure:"layout"`
	Render renderConfig `mapstructure:"render"`
}

type logConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
	// Debug names a file that receives every layout trace at debug level,
	// whatever Level is.
	Debug string `mapstructure:"debug"`
}

type layoutConfig struct {
	Format string `mapstructure:"format"`
	// Parallel bounds how many scenes are laid out at once.
	Parallel int `mapstructure:"parallel"`
}

type renderConfig struct {
	Scale  float64 `mapstructure:"scale"`
	Labels bool    `mapstructure:"labels"`
	Margin int     `mapstructure:"margin"`
}

// app is the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "flex",
		Short:         "Lay out flexbox scene documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetVersionTemplate("flex version {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./flex.yaml)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	flags.String("debug-log", "", "write layout traces to this file (also FLEX_DEBUG)")
	_ = a.v.BindPFlag("log.debug", flags.Lookup("debug-log"))

	a.v.SetDefault("log.level", "warn")
	a.v.SetDefault("log.format", "console")
	a.v.SetDefault("layout.format", "text")
	a.v.SetDefault("layout.parallel", 4)
	a.v.SetDefault("render.scale", 1.0)
	a.v.SetDefault("render.labels", true)
	a.v.SetDefault("render.margin", 8)

	root.AddCommand(
		newLayoutCmd(a),
		newRenderCmd(a),
		newVersionCmd(),
	)
	return root
}

// initialize reads the config file and environment and builds the logger.
func (a *app) initialize() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("flex")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("FLEX")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	logger, err := newLogger(a.cfg.Log)
	if err != nil {
		return err
	}
	if path := a.cfg.Log.Debug; path != "" {
		if err := debug.Init(path); err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
	}
	// Traces also reach the debug log, which is a no-op unless enabled.
	a.logger = logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, debug.Logger().Core())
	}))
	a.logger.Debug("config loaded", zap.String("file", a.v.ConfigFileUsed()))
	return nil
}
