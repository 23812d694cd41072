package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"econdash.hanlabs.org/internal/appconf"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "econdash",
	Short: "econdash serves an interactive dashboard for Korean economic-activity statistics",
	Long: `econdash loads a CSV of Korean economic-activity statistics once at
startup and serves an interactive dashboard: filterable table, descriptive
statistics, bar/line charts and a correlation heatmap.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return ensureConfigLoaded()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(currentConfig())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (e.g., config.yaml)")

	rootCmd.PersistentFlags().Int("port", 4000, "HTTP server port")
	rootCmd.PersistentFlags().String("env", "development", "Environment (development|test|production)")
	rootCmd.PersistentFlags().String("data-path", "경제활동_통합.csv", "path of the source CSV")
	rootCmd.PersistentFlags().Int("rate-limit", 50, "requests per second per client (0 disables limiting)")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env"))
	_ = viper.BindPFlag("data-path", rootCmd.PersistentFlags().Lookup("data-path"))
	_ = viper.BindPFlag("rate-limit", rootCmd.PersistentFlags().Lookup("rate-limit"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config file when one was given and sets safe
// defaults otherwise.
func ensureConfigLoaded() error {
	viper.SetDefault("port", 4000)
	viper.SetDefault("env", "development")
	viper.SetDefault("data-path", "경제활동_통합.csv")
	viper.SetDefault("rate-limit", 50)

	if cfgFile == "" {
		return nil
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// currentConfig materializes the merged configuration (flags > config file >
// defaults) into a stable snapshot.
func currentConfig() appconf.Config {
	return appconf.Config{
		Port:      viper.GetInt("port"),
		Env:       appconf.EnvFlagToEnvironment(viper.GetString("env")),
		DataPath:  viper.GetString("data-path"),
		RateLimit: viper.GetInt("rate-limit"),
	}
}
