package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/wslclip/internal/logging"
	"go.klb.dev/wslclip/internal/sanitize"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and WSLCLIP_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → WSLCLIP_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("wsl-clip")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/wsl-clip/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/wsl-clip", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("WSLCLIP")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	logging.Setup(v.GetBool("debug"), logging.ParseFormat(v.GetString("log-format")))
}

// textConfig reads the sanitizer flags once into an immutable config; nothing
// downstream consults flags again mid-stream.
func textConfig(v *viper.Viper) sanitize.Config {
	cfg := sanitize.Default()
	if v.GetBool("no-strip") {
		cfg.StripANSI = false
		cfg.StripControl = false
	}
	cfg.ConvertCRLF = v.GetBool("crlf")
	cfg.WrapCodeFence = v.GetBool("code")
	if v.GetBool("no-header") {
		cfg.EmitFileHeaders = false
	}
	return cfg
}
