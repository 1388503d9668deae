package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"giftexchange/internal/adapters/out/mailer"
	"giftexchange/internal/adapters/out/metrics"
	"giftexchange/internal/core/application/usecases/commands"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/domain/services"
	"giftexchange/internal/pkg/logging"

	"github.com/spf13/cobra"
)

type options struct {
	file        string
	seed        int64
	maxAttempts int
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "drawctl",
		Short:        "Draft pick orders and draw gift recipients from a roster file",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "roster file (YAML or JSON)")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "seed for a reproducible draw (default: current time)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", os.Getenv("LOG_LEVEL"), "debug, info, warn or error")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(newPickOrderCmd(opts), newMatchCmd(opts))
	return root
}

func newPickOrderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pick-order",
		Short: "Draft a pick order and print members by rank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups, err := readRosterFile(opts.file)
			if err != nil {
				return err
			}

			logger := newLogger(cmd, opts)
			handler := commands.NewDraftPickOrderCommandHandler(
				services.NewPickOrderDrafter(engineOptions(cmd, opts, logger)...),
				metrics.NewNop(),
			)

			draft, err := commands.NewDraftPickOrderCommand(groups)
			if err != nil {
				return err
			}
			result, err := handler.Handle(cmd.Context(), draft)
			if err != nil {
				return err
			}

			printRanks(cmd, result.Groups)
			return nil
		},
	}
}

func newMatchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Draw recipients and print giver -> recipient pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups, err := readRosterFile(opts.file)
			if err != nil {
				return err
			}

			logger := newLogger(cmd, opts)
			engine := engineOptions(cmd, opts, logger)
			handler := commands.NewMatchRecipientsCommandHandler(
				services.NewPickOrderDrafter(engine...),
				services.NewRecipientAssigner(append(engine, services.WithMaxAttempts(opts.maxAttempts))...),
				mailer.NewConsoleNotifier(logger),
				metrics.NewNop(),
				logger,
			)

			match, err := commands.NewMatchRecipientsCommand(groups, false)
			if err != nil {
				return err
			}
			result, err := handler.Handle(cmd.Context(), match)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range result.Pairings {
				fmt.Fprintf(out, "%s -> %s\n", p.Giver, p.Recipient)
			}
			fmt.Fprintln(out, result.Message)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", services.DefaultMaxAttempts, "recipient draw attempts before giving up")
	return cmd
}

func newLogger(cmd *cobra.Command, opts *options) *slog.Logger {
	return logging.SetupWithWriter(cmd.ErrOrStderr(), logging.ParseLevel(opts.logLevel))
}

// engineOptions pins the seed when --seed was given.
func engineOptions(cmd *cobra.Command, opts *options, logger *slog.Logger) []services.Option {
	engine := []services.Option{services.WithLogger(logger)}
	if cmd.Flags().Changed("seed") {
		engine = append(engine, services.WithSeedSource(services.FixedSeedSource(opts.seed)))
	}
	return engine
}

func printRanks(cmd *cobra.Command, groups []roster.GroupEntry) {
	type row struct {
		rank   int
		group  string
		member string
	}

	var rows []row
	for _, g := range groups {
		for _, m := range g.Members {
			if m.Rank != nil {
				rows = append(rows, row{rank: *m.Rank, group: g.Name, member: m.Name})
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].rank < rows[j].rank })

	out := cmd.OutOrStdout()
	for _, r := range rows {
		fmt.Fprintf(out, "%3d  %s (%s)\n", r.rank, r.member, r.group)
	}
}
