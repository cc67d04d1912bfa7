package main

import (
	"fmt"
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	smlog "github.com/spacemeshos/smutil/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sck451/BitPacker/config"
	"github.com/sck451/BitPacker/dump"
	"github.com/sck451/BitPacker/persistence"
)

var (
	cfg        = config.DefaultConfig()
	configFile string
	raw        bool
)

var rootCmd = &cobra.Command{
	Use:   "bitdump",
	Short: "inspect packed bit streams",
}

var hexCmd = &cobra.Command{
	Use:   "hex <stream>",
	Short: "print a hex dump of a stream's payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, _, err := load(args[0])
		if err != nil {
			return err
		}
		return dump.Hex(os.Stdout, payload)
	},
}

var binCmd = &cobra.Command{
	Use:   "bin <stream>",
	Short: "print a bit-level dump of a stream's payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, _, err := load(args[0])
		if err != nil {
			return err
		}
		return dump.Binary(os.Stdout, payload)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <stream>",
	Short: "print a summary of a stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, numBits, err := load(args[0])
		if err != nil {
			return err
		}

		padding := uint64(len(payload))*8 - numBits
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"stream", "size", "bits", "padding bits"})
		table.SetBorder(true)
		table.Append([]string{
			args[0],
			bytefmt.ByteSize(uint64(len(payload))),
			strconv.FormatUint(numBits, 10),
			strconv.FormatUint(padding, 10),
		})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "path to configuration file")
	flags.StringVar(&cfg.DataDir, "datadir", cfg.DataDir, "stream data directory")
	flags.BoolVar(&raw, "raw", false, "treat the argument as a plain file path without a stream header")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(hexCmd, binCmd, infoCmd)
}

// loadConfig reads the optional config file and applies it beneath any
// explicitly set flags.
func loadConfig() error {
	if configFile == "" {
		return nil
	}

	vip := viper.New()
	vip.SetConfigFile(configFile)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %v", err)
	}
	if err := vip.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %v", err)
	}

	// Flags take precedence over the config file.
	rootCmd.PersistentFlags().Visit(func(f *pflag.Flag) {
		if f.Name == "datadir" {
			cfg.DataDir = f.Value.String()
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	smlog.Info("loaded config file %v", configFile)
	return nil
}

// load resolves a stream argument: by default the name of a persisted
// stream within the data directory, or a plain file path with --raw.
func load(arg string) ([]byte, uint64, error) {
	if raw {
		payload, err := os.ReadFile(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("read file failure: %v", err)
		}
		return payload, uint64(len(payload)) * 8, nil
	}
	return persistence.Fetch(cfg.DataDir, arg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
