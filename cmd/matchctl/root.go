package main

import (
	"context"
	"fmt"
	"strings"

	"mentor-match/internal/app"
	"mentor-match/internal/config"
	"mentor-match/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const appName = "matchctl"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           appName,
		Short:         "matchctl operates the mentor-match engine: rankings, readiness, research trends and caches",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file with the service environment keys (default is .env in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	_ = viper.BindPFlag("LOG_DEBUG", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("LOG_JSON", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
	}

	// A missing default file is fine; the environment may carry every key.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		cobra.CheckErr(fmt.Errorf("read config %s: %w", cfgFile, err))
	}
}

func loadConfig() (config.Config, error) {
	return config.LoadFrom(viper.GetString)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
}

func withContainer(cmd *cobra.Command, fn func(ctx context.Context, c *app.Container) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := app.NewContainer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn("closing container", zap.Error(err))
		}
	}()

	return fn(ctx, c)
}

func uuidFlag(cmd *cobra.Command, name string) (uuid.UUID, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return uuid.Nil, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("--%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--%s: %w", name, err)
	}
	return id, nil
}
