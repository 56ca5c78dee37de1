package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/xutil/internal/mcpserver"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout. Logs go to stderr.

Tool defaults are read from XUTIL_MCP_* environment variables, including
those set in dotenv files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, _, err := opts.loadConfig(cmd); err != nil {
				return err
			}
			return mcpserver.Run(cmd.Context())
		},
	}
	addLogFlags(cmd)
	return cmd
}
