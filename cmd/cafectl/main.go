// Command cafectl is the operator tool for the BOUM cafe services.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"boum-cafe/config"
	"boum-cafe/speech"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

type synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// env carries everything the commands reach outside the process for.
type env struct {
	out        io.Writer
	http       HTTPClient
	gatewayURL string
	token      string
	synth      func() synthesizer
	redis      func() *redis.Client
}

func defaultEnv() *env {
	return &env{
		out:        os.Stdout,
		http:       &http.Client{Timeout: 30 * time.Second},
		gatewayURL: config.GetEnv("CAFE_GATEWAY_URL", "http://localhost:8080"),
		token:      os.Getenv("CAFE_SESSION_TOKEN"),
		synth: func() synthesizer {
			return speech.NewClient(
				os.Getenv("GEMINI_API_KEY"),
				config.GetEnv("GEMINI_API_URL", speech.DefaultAPIURL),
				config.GetEnv("GEMINI_MODEL", speech.DefaultModel),
				config.GetEnv("GEMINI_VOICE", speech.DefaultVoice),
			)
		},
		redis: config.MustInitRedis,
	}
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "cafectl",
		Short:         "Operate the BOUM menu board and broadcast console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&e.gatewayURL, "gateway", e.gatewayURL, "API gateway base URL")
	root.PersistentFlags().StringVar(&e.token, "token", e.token, "admin session token (defaults to $CAFE_SESSION_TOKEN)")

	root.AddCommand(bandsCmd(e))
	root.AddCommand(recompactCmd(e))
	root.AddCommand(speakCmd(e))
	root.AddCommand(sessionCmd(e))
	return root
}

func main() {
	config.LoadDotEnv()
	if err := newRootCmd(defaultEnv()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
