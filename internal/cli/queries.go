package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"vanifolio/internal/config"
	"vanifolio/internal/db"
)

var errNoDatabase = errors.New("DATABASE_URL is not set; query analytics are disabled")

func newQueriesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "List recent FAQ searches recorded by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, database *db.DB) error {
				logs, err := database.RecentQueryLogs(ctx, limit)
				if err != nil {
					return err
				}
				if len(logs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No queries recorded.")
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tWHEN\tPAGE\tOUTCOME\tENTRY\tQUERY")
				for _, q := range logs {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%q\n",
						q.ID, q.CreatedAt.Format("2006-01-02 15:04"), q.Page, q.Outcome, q.EntryID, q.Query)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of queries to show")

	show := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one recorded FAQ search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid query id %q: %w", args[0], err)
			}
			return withDatabase(cmd.Context(), func(ctx context.Context, database *db.DB) error {
				q, err := database.GetQueryLog(ctx, id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "id:      %s\n", q.ID)
				fmt.Fprintf(out, "when:    %s\n", q.CreatedAt.Format("2006-01-02 15:04:05 MST"))
				fmt.Fprintf(out, "page:    %s\n", q.Page)
				fmt.Fprintf(out, "outcome: %s\n", q.Outcome)
				fmt.Fprintf(out, "entry:   %s\n", q.EntryID)
				fmt.Fprintf(out, "query:   %s\n", q.Query)
				return nil
			})
		},
	}
	cmd.AddCommand(show)

	return cmd
}

func withDatabase(ctx context.Context, fn func(context.Context, *db.DB) error) error {
	cfg := config.Load()
	if !cfg.HasDatabase() {
		return errNoDatabase
	}
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(ctx, database)
}
