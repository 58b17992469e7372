package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/bodai/internal/config"
	"github.com/sandevgo/bodai/internal/service/ui"
	dotenv "github.com/sandevgo/bodai/pkg/env"
	"github.com/spf13/cobra"
)

var (
	initForce         bool
	initLanguage      string
	initTelegramToken string
	initTelegramOwner int64
)

var initCmd = &cobra.Command{
	Use:          "init",
	Short:        "Write a default configuration to the runtime directory",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		runtimePath := config.GetRuntimePath()
		envPath := filepath.Join(runtimePath, ".env")

		if _, err := os.Stat(envPath); err == nil && !initForce {
			return fmt.Errorf("%s already exists, use --force to overwrite", envPath)
		}

		appCfg, err := config.ParseAppConfig()
		if err != nil {
			return err
		}
		appCfg.Language = initLanguage

		httpCfg := &config.HTTPConfig{}
		if err := env.Parse(httpCfg); err != nil {
			return err
		}

		configs := []any{appCfg, httpCfg}
		if initTelegramToken != "" {
			appCfg.EnableTelegram = true
			configs = append(configs, &config.TelegramConfig{Token: initTelegramToken, OwnerID: initTelegramOwner})
		}

		content, err := dotenv.MarshalEnv(configs...)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(runtimePath, 0o755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}
		if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", envPath, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.TitleStyle.Render("configuration written"))
		fmt.Fprintln(cmd.OutOrStdout(), ui.DescStyle.Render(envPath))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing .env")
	initCmd.Flags().StringVar(&initLanguage, "language", "en", "reply language (en or ro)")
	initCmd.Flags().StringVar(&initTelegramToken, "telegram-token", "", "enable the Telegram transport with this bot token")
	initCmd.Flags().Int64Var(&initTelegramOwner, "telegram-owner", 0, "Telegram user id allowed to talk to the bot")
	rootCmd.AddCommand(initCmd)
}
