package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vramfit/internal/estimate"
	"vramfit/internal/registry"
	"vramfit/pkg/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	var (
		precision  string
		endpoint   string
		token      string
		timeoutSec int
	)
	root := &cobra.Command{
		Use:   "vramfit <model_or_params>",
		Short: "Estimate required GPU memory for a model",
		Long: "Estimates the GPU memory needed to load a model, from a registry model id\n" +
			"(e.g. mistralai/Mistral-7B-v0.1), a size label (e.g. 405B), or a bare\n" +
			"parameter count.",
		Example: "  vramfit 405B\n" +
			"  vramfit 7000000000 -p 16\n" +
			"  vramfit mistralai/Mistral-7B-v0.1 -p auto",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := types.ParseSelector(precision)
			if err != nil {
				return err
			}
			hub := registry.NewHubClient(endpoint, token, time.Duration(timeoutSec)*time.Second)
			rep, err := estimate.New(hub).Estimate(cmd.Context(), args[0], sel)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rep.Text)
			return nil
		},
	}
	root.Flags().StringVarP(&precision, "precision", "p", "all", "Precision: all|auto|32|16|8|4")
	root.Flags().StringVar(&endpoint, "hub-endpoint", envOr("VRAMFIT_HUB_ENDPOINT", registry.DefaultEndpoint), "Model hub base URL")
	root.Flags().StringVar(&token, "hub-token", os.Getenv("VRAMFIT_HUB_TOKEN"), "Bearer token for gated or private hub repos")
	root.Flags().IntVar(&timeoutSec, "hub-timeout", 30, "Hub request timeout in seconds")
	return root
}
