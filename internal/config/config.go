// Package config assembles and validates the wake configuration.
package config

import (
	"fmt"

	"github.com/dhallas/wake-on-lan/internal/models"
	"github.com/dhallas/wake-on-lan/internal/services/wol"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load builds a WakeConfig from the command's flag set, applying defaults
// for any value the caller did not set.
func Load(flags *pflag.FlagSet) (*models.WakeConfig, error) {
	v := viper.New()
	v.SetDefault("address", wol.DefaultBroadcastAddr)
	v.SetDefault("port", wol.DefaultPort)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	cfg := &models.WakeConfig{
		MACAddress:    v.GetString("mac"),
		BroadcastAddr: v.GetString("address"),
		Port:          v.GetUint16("port"),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that cfg describes a sendable wake request.
func Validate(cfg *models.WakeConfig) error {
	if cfg.MACAddress == "" {
		return fmt.Errorf("mac is required")
	}
	if _, err := wol.ParseMAC(cfg.MACAddress); err != nil {
		return err
	}
	if cfg.BroadcastAddr == "" {
		return fmt.Errorf("address must not be empty")
	}
	return nil
}
