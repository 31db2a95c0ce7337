package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// NotifierConfig configures the optional Telegram announcement channel.
// Leaving the token empty disables the notifier entirely.
type NotifierConfig struct {
	TgToken  string `mapstructure:"tg_token"`
	TgChatID int64  `mapstructure:"tg_chat_id"`
}

func (config NotifierConfig) Enabled() bool {
	return config.TgToken != ""
}

func (config NotifierConfig) validate() error {
	if config.TgToken != "" && config.TgChatID == 0 {
		return fmt.Errorf("missing variable: tg_chat_id")
	}
	return nil
}

func (config NotifierConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("notifier.tg_token", "TG_TOKEN"); err != nil {
		return err
	}

	return viper.BindEnv("notifier.tg_chat_id", "TG_CHAT_ID")
}
