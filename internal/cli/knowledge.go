package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vanifolio/internal/config"
)

func newKnowledgeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "Inspect the FAQ knowledge base",
	}

	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the active knowledge base as site YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kb, err := opts.knowledgeBase()
			if err != nil {
				return err
			}
			site := config.SiteFileFrom(kb)
			if out != "" {
				if err := site.Save(out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", kb.Len(), out)
				return nil
			}
			data, err := site.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")

	validate := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a site YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.loadConfig().SiteFile
			if len(args) == 1 {
				path = args[0]
			}
			kb, err := config.LoadSiteFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %d suggestions, default query %q\n",
				path, kb.Len(), len(kb.Suggestions()), kb.DefaultQuery())
			return nil
		},
	}

	cmd.AddCommand(export, validate)
	return cmd
}
