package main

import (
	"context"
	"fmt"

	"github.com/dhallas/wake-on-lan/internal/config"
	"github.com/dhallas/wake-on-lan/internal/services/wol"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runWake(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		_ = cmd.Usage()
		return err
	}

	log.Debug().
		Str("mac", cfg.MACAddress).
		Str("address", cfg.BroadcastAddr).
		Uint16("port", cfg.Port).
		Msg("configuration loaded")

	svc := wol.New(log.Logger)
	result, err := svc.Wake(context.Background(), *cfg)
	if err != nil {
		log.Error().Err(err).Msg("wake failed")
		return err
	}

	fmt.Printf("Wake-on-LAN packet sent to %s (%d bytes to %s)\n",
		cfg.MACAddress, result.BytesSent, result.Destination)
	return nil
}
