package config

import (
	"github.com/DIMO-Network/shared/pkg/db"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// DiscordPublicKey is the hex encoded Ed25519 public key of the Discord application.
	DiscordPublicKey   string `env:"DISCORD_PUBLIC_KEY"`
	VerifyWalletURL    string `env:"VERIFY_WALLET_URL"`
	AccountExplorerURL string `env:"ACCOUNT_EXPLORER_URL"`

	DB db.Settings `envPrefix:"DB_"`
}
