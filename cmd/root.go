package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"showtime-finder-cli/config"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/mapwidget"
	"showtime-finder-cli/service"
	"showtime-finder-cli/store"
	"showtime-finder-cli/tui"
)

const appName = "showtime-finder"

var (
	appVersion = "dev"
	appCommit  = "none"
)

var rootFlags struct {
	config    string
	path      string
	city      string
	logOutput string
	user      string
	detect    bool
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Movie showtimes in your terminal",
	Long:  `Browse movies, cinemas and showtimes by city, all from the terminal :)`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closeLog, err := fileLogger(rootFlags.logOutput, cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		client := service.NewClient(nil)
		session := store.NewSession()
		if rootFlags.user != "" {
			if err := session.SignIn(rootFlags.user); err != nil {
				return err
			}
		}
		model := tui.New(tui.Options{
			Dataset: dataset.Default(),
			Path:    cfg.InitialPath,
			CityKey: cfg.DefaultCity,
			Maps: mapwidget.NewLoader(client, cfg.MapsAPIKey,
				mapwidget.WithEndpoint(cfg.MapsEndpoint),
				mapwidget.WithLogger(logger),
			),
			Session:    session,
			Locator:    client,
			DetectCity: cfg.DetectCity,
			Logger:     logger,
		})
		logger.Info("starting tui", "path", cfg.InitialPath, "city", cfg.DefaultCity)
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), appName+" "+appVersion)
		if appCommit != "none" && appCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " (%s)", appCommit)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.config, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&rootFlags.city, "city", "", "city key, e.g. hanoi")
	rootCmd.Flags().StringVar(&rootFlags.path, "path", "", "route to open, e.g. /cinemas/cgv-vincom")
	rootCmd.Flags().StringVar(&rootFlags.logOutput, "log-output", "", "write JSON logs to this file")
	rootCmd.Flags().StringVar(&rootFlags.user, "user", "", "sign in with this phone number or email")
	rootCmd.Flags().BoolVar(&rootFlags.detect, "detect-city", false, "pick the nearest city from your IP location")

	rootCmd.AddCommand(serveCmd, routeCmd, catalogCmd, showtimesCmd, versionCmd)
}

// Execute runs the command tree with the build version attached.
func Execute(version, commit string) error {
	appVersion, appCommit = version, commit
	return rootCmd.Execute()
}

// loadConfig reads the config and applies the flags set on cmd on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(rootFlags.config)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("city") {
		cfg.DefaultCity = rootFlags.city
	}
	if flags.Changed("path") {
		cfg.InitialPath = rootFlags.path
	}
	if flags.Changed("detect-city") {
		cfg.DetectCity = rootFlags.detect
	}
	return cfg, nil
}

func levelOf(cfg *config.Config) slog.Level {
	level, err := cfg.Level()
	if err != nil {
		return slog.LevelInfo
	}
	return level
}
