package main

import (
	"os"
	"strings"

	"github.com/dhallas/wake-on-lan/internal/services/wol"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Logging flags.
	verbose    bool
	quiet      bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "wakecast",
	Short: "Send a Wake-on-LAN magic packet",
	Long: `wakecast wakes a network device by sending it a Wake-on-LAN magic
packet: a single 102-byte UDP datagram (6 bytes of 0xFF followed by the
target MAC address repeated 16 times), sent once to a broadcast address.

The target device must have Wake-on-LAN enabled in its firmware and
network interface for the packet to have any effect.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	Version:      Version,
	SilenceUsage: true,
	RunE:         runWake,
}

func init() {
	rootCmd.Flags().StringP("mac", "m", "", "MAC address of the device to wake (aa:bb:cc:dd:ee:ff)")
	rootCmd.Flags().StringP("address", "a", wol.DefaultBroadcastAddr, "destination host or broadcast address")
	rootCmd.Flags().Uint16P("port", "p", wol.DefaultPort, "destination UDP port")
	_ = rootCmd.MarkFlagRequired("mac")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode (errors only)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output logs in JSON format")
}

func setupLogging() {
	// Set output format
	if jsonOutput {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		output.FormatLevel = func(i interface{}) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s)
			}
			return ""
		}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set log level
	switch {
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
