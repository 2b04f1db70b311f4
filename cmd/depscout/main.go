package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhuels/depscout/internal/cli"
	"github.com/mhuels/depscout/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
			observability.SetHTTPHooks(&debugHTTPHooks{c: c})
		}
	}

	return root.ExecuteContext(ctx)
}

// debugHTTPHooks mirrors registry traffic into the debug log when --verbose
// is set.
type debugHTTPHooks struct {
	observability.NoopHTTPHooks
	c *cli.CLI
}

func (h *debugHTTPHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.c.Logger.Debugf("%s %s%s -> %d (%s)", method, host, path, status, d.Round(time.Millisecond))
}

func (h *debugHTTPHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.c.Logger.Debugf("%s %s%s failed: %v", method, host, path, err)
}
