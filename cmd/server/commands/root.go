// Package commands implements the pdf-text-extractor command line.
package commands

import (
	"github.com/spf13/cobra"
)

// serverFlags are shared by the root command and "serve"
type serverFlags struct {
	host  string
	port  string
	debug bool
}

// NewRootCommand builds the command tree. Running the root command without
// a subcommand starts the server.
func NewRootCommand() *cobra.Command {
	flags := &serverFlags{}

	rootCmd := &cobra.Command{
		Use:   "pdf-text-extractor",
		Short: "Extract plain text from uploaded PDF files",
		Long: `pdf-text-extractor serves POST /extract-text, which accepts a PDF as
multipart field "file" and returns its text page by page.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.host, "host", "", "interface to bind (overrides HOST)")
	rootCmd.PersistentFlags().StringVarP(&flags.port, "port", "p", "", "port to listen on (overrides PORT)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging (overrides DEBUG)")

	rootCmd.AddCommand(newServeCommand(flags))
	rootCmd.AddCommand(newExtractCommand(flags))

	return rootCmd
}
