package cmd

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zjx20/benglish-gemini/config"
	"github.com/zjx20/benglish-gemini/relay"
	"github.com/zjx20/benglish-gemini/server"
)

var version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "benglish-gemini",
	Short: "Benglish/Hinglish converter and grammar checker backed by Gemini",
	Long: `Relays Benglish/Hinglish script conversion and grammar checking to the
Gemini generateContent API.

The credential is read from GEMINI_API_KEY (or a .env file).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configPath); err != nil {
			return err
		}
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (yaml, toml or json)")
}

func setupLogging() {
	log.SetLevel(config.GetLogLevel())
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:   runtime.GOOS == "windows",
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	config.AddConfigChangeCallback(func() {
		log.SetLevel(config.GetLogLevel())
	})
}

func newRelay() (*relay.Relay, error) {
	gen, err := server.NewGenerator(config.ReadConfig())
	if err != nil {
		return nil, err
	}
	return relay.New(gen), nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}
