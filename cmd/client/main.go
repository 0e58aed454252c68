package main

import (
	"fmt"
	"os"

	"github.com/cbodonnell/ballpit/client/game"
	"github.com/cbodonnell/ballpit/pkg/config"
	"github.com/cbodonnell/ballpit/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ballpit",
		Short: "physics sandbox that spawns balls as the pointer moves",
		RunE:  runClient,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "show the debug overlay")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective config as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			b, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to marshal config: %v", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %v", err)
	}
	return cfg, nil
}

func runClient(cmd *cobra.Command, args []string) error {
	parsedLogLevel, err := log.ParseLogLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:  debug,
		Config: cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %v", err)
	}
	return nil
}
