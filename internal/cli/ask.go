package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vanifolio/internal/faq"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var (
		page       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Ask the FAQ widget a question from the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := opts.knowledgeBase()
			if err != nil {
				return err
			}

			resp, err := faq.NewMatcher(kb).Search(strings.Join(args, " "), faq.PageContext(page))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			if resp.Notice != nil {
				fmt.Fprintf(out, "%s. %s\n\n", resp.Notice.Title, resp.Notice.Hint)
			}
			for i, r := range resp.Results {
				fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, r.Title, r.Answer)
				if r.Actionable() {
					fmt.Fprintf(out, "   -> /%s\n", r.Target)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&page, "page", "/", "page the question is asked from, e.g. /case-study-1.html")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output the response as JSON")
	return cmd
}
