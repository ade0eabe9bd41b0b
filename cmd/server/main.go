package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"vedic-backend/internal/config"
	"vedic-backend/internal/logging"
)

var (
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Sidereal chart backend",
	Long:  "Serves natal charts, place lookup and timezone estimates over HTTP. Run `server chart` for a one-shot JSON chart.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Verbose)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default vedic.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().String("ephemeris-path", "", "directory holding VSOP87B files (analytical fallback when empty)")
	rootCmd.Flags().Int("port", 8001, "HTTP port")
	rootCmd.Flags().String("cities-file", "world_cities.json", "offline city list for place lookup")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("ephemeris_path", rootCmd.PersistentFlags().Lookup("ephemeris-path"))
	_ = viper.BindPFlag("port", rootCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("cities_file", rootCmd.Flags().Lookup("cities-file"))

	rootCmd.AddCommand(chartCmd)
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vedic")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("VEDIC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
