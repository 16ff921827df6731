// notifyctl dispatches short notification messages to webhook-based
// messaging channels (Teams, Feishu, WeChat).
//
// Installation:
//
//	go build -o notifyctl ./cmd/notifyctl
//	mv notifyctl /usr/local/bin/
//
// Usage:
//
//	notifyctl init
//	notifyctl send -e build_failure -t "Build #42 failed" -c "exit code 1" -l critical
//	notifyctl test feishu
//	echo '{"event":"build_failure","title":"Build #42 failed"}' | notifyctl hook
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/notifyctl/notifyctl/config"
	"github.com/notifyctl/notifyctl/dispatch"
	"github.com/notifyctl/notifyctl/notify"
)

var version = "dev"

func main() {
	// Secrets may live in a .env next to the working directory
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	rootCmd := &cobra.Command{
		Use:           "notifyctl",
		Short:         "Dispatch notifications to Teams, Feishu, and WeChat webhooks",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(sendCmd())
	rootCmd.AddCommand(hookCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(testCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newDispatcher loads configuration and assembles the dispatch pipeline.
func newDispatcher() (*dispatch.Dispatcher, error) {
	cfg, err := config.Load(config.LoadOptions{})
	if err != nil {
		return nil, err
	}
	return dispatch.New(cfg, notify.BuildRegistry(cfg)), nil
}

// printReport writes the per-channel outcome map to stdout.
func printReport(report dispatch.Report, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
