// Package cli wires the vanifolio command tree.
package cli

import (
	"github.com/spf13/cobra"

	"vanifolio/internal/config"
	"vanifolio/internal/faq"
)

// Version is set via ldflags at build time.
var Version = "dev"

type rootOptions struct {
	siteFile string
}

// NewRootCmd builds the vanifolio command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "vanifolio",
		Short: "Portfolio site server with the \"Ask me\" FAQ widget",
		Long: `Vanifolio serves a product design portfolio and its "Ask me" widget,
a keyword matcher over a small knowledge base that answers visitor
questions and links to the relevant case study.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.siteFile, "site", "", "site YAML with the knowledge base (default $SITE_FILE or site.yaml)")

	root.AddCommand(
		newServeCmd(opts),
		newAskCmd(opts),
		newKnowledgeCmd(opts),
		newQueriesCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the environment, applying the --site override.
func (o *rootOptions) loadConfig() *config.Config {
	cfg := config.Load()
	if o.siteFile != "" {
		cfg.SiteFile = o.siteFile
	}
	return cfg
}

func (o *rootOptions) knowledgeBase() (*faq.KnowledgeBase, error) {
	return config.LoadSiteFile(o.loadConfig().SiteFile)
}
