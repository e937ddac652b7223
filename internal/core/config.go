package core

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const BaseDirName = ".config/pdsig"

var Config *viper.Viper

// InitializeConfig loads the TOML config file from the configured path and
// binds the global flags. Environment variables with the PDSIG_ prefix
// override file values.
func InitializeConfig(cmd *cobra.Command) error {
	Config = viper.New()

	configPath, err := cmd.Root().PersistentFlags().GetString("config-path")
	if err != nil {
		return fmt.Errorf("unable to determine config path: %w", err)
	}
	Config.AddConfigPath(configPath)

	Config.SetConfigName("config")
	Config.SetConfigType("toml")

	Config.SetDefault("verbose", 0)
	Config.SetDefault("run.signal", "SIGTERM")
	Config.SetDefault("run.setsid", false)

	Config.SetEnvPrefix("pdsig")

	// A missing config file is fine, the defaults cover everything
	if err := Config.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("unable to read config: %w", err)
		}
	}

	// In order to get environment variables mapped into config sections, we need to replace . with _
	Config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Config.AutomaticEnv()

	if flag := cmd.Root().PersistentFlags().Lookup("verbose"); flag != nil {
		if err := Config.BindPFlag("verbose", flag); err != nil {
			return fmt.Errorf("unable to bind verbose flag: %w", err)
		}
	}

	return nil
}
