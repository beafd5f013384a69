package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yanqian/skillcanon/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatalf("skillcanon: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var opts bootstrap.Options
	cmd := &cobra.Command{
		Use:   "skillcanon [skill ...]",
		Short: "Canonicalize free-text skill names",
		Long: `Normalizes skill names and maps known variants to a canonical name.

Skills are read from positional arguments, from --candidate/--required files
(one skill per line, # starts a comment) or from stdin. Passing both files
also compares the candidate's skills with the required ones.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Skills = args
			opts.Stdin = cmd.InOrStdin()
			opts.Stdout = cmd.OutOrStdout()

			app, cleanup, err := initializeApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&opts.CandidatePath, "candidate", "", "file with the candidate's skills")
	cmd.Flags().StringVar(&opts.RequiredPath, "required", "", "file with the required skills")
	cmd.SetOut(os.Stdout)
	return cmd
}
