package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(context.Background(), os.Getenv, os.Getwd, os.Args[1:], os.Stdout); err != nil {
		slog.Error("seedgen failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	getenv func(string) string,
	getwd func() (string, error),
	args []string,
	stdout io.Writer,
) error {
	c := NewConfig()

	// Flags are bound last, so they win over '.env' and the environment
	if err := c.LoadDotEnv(getwd); err != nil {
		return err
	}
	if err := c.LoadEnv(getenv); err != nil {
		return err
	}

	cmd := newRootCommand(c, stdout)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

func newRootCommand(c *Config, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seedgen",
		Short: "Generate SQL fixtures for the WeChat Pay points backend",
		Long: `Generates users, merchants, payment orders, points records and balances
for one fixture profile and writes them as a single SQL import file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := NewApp(c, stdout)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
	cmd.SetOut(stdout)
	c.BindFlags(cmd.Flags())

	return cmd
}
