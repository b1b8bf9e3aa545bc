package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AlexEneas/discogs-tagfix/internal/audit"
	"github.com/AlexEneas/discogs-tagfix/internal/config"
	"github.com/AlexEneas/discogs-tagfix/internal/discogs"
	"github.com/AlexEneas/discogs-tagfix/internal/runner"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var delaySecs float64

	cmd := &cobra.Command{
		Use:   "discogs-tagfix <folder>",
		Short: "Fix year/label tags and cover art from Discogs",
		Long: `discogs-tagfix scans a folder of audio files, identifies each track from
its tags or filename, looks it up on Discogs, and corrects the year and
label tags plus the embedded cover art where needed. Every file gets one
row in the audit CSV, whatever the outcome.

Credentials come from flags or the environment:
  DISCOGS_TAGFIX_KEY, DISCOGS_TAGFIX_SECRET, DISCOGS_TAGFIX_TOKEN`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Root = args[0]
			cfg.Delay = time.Duration(delaySecs * float64(time.Second))
			cfg.ConsumerKey = viper.GetString("key")
			cfg.ConsumerSecret = viper.GetString("secret")
			cfg.Token = viper.GetString("token")
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.OutPath, "out", "o", cfg.OutPath, "audit CSV path")
	flags.BoolVarP(&cfg.Recursive, "recursive", "r", false, "descend into subfolders")
	flags.Float64Var(&delaySecs, "delay", cfg.Delay.Seconds(), "seconds between Discogs requests")
	flags.IntVar(&cfg.MinArtSize, "min-art", cfg.MinArtSize, "minimum cover art dimension in pixels")
	flags.BoolVar(&cfg.NoArt, "no-art", false, "leave embedded art alone")
	flags.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "match confidence threshold [0,1]")
	flags.StringVar(&cfg.PlaceholderPath, "placeholder", "", "stand-in artwork image to always replace")
	flags.String("key", "", "Discogs consumer key")
	flags.String("secret", "", "Discogs consumer secret")
	flags.String("token", "", "Discogs personal access token (optional)")

	viper.SetEnvPrefix("DISCOGS_TAGFIX")
	viper.AutomaticEnv()
	for _, name := range []string{"key", "secret", "token"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	sink, err := audit.NewWriter(cfg.OutPath)
	if err != nil {
		return err
	}
	defer sink.Close()

	r, err := runner.New(cfg, discogs.NewClient(cfg), sink)
	if err != nil {
		return err
	}
	return r.Run(cmd.Context())
}
