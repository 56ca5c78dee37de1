// Package commands provides the cobra command tree of the xutil CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/xutil/internal/cliutil"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	format     string
	configFile string
	envFiles   []string
}

// NewRootCmd builds the xutil command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "xutil",
		Short: "Unit conversion and developer utilities",
		Long: `xutil converts units and data formats, encodes and hashes text, generates
identifiers, passwords and placeholder text, and converts times.

It runs as a one-shot CLI, as an HTTP JSON API (xutil serve) or as an MCP
server over stdio (xutil mcp).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cliutil.ValidateOutputFormat(opts.format)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.format, "format", "f", cliutil.FormatText, "output format: text, json or yaml")
	pf.StringVar(&opts.configFile, "config", "", "config file (YAML, JSON or TOML)")
	pf.StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "dotenv files to load; missing files are skipped")

	cmd.AddCommand(
		newServeCmd(opts),
		newMCPCmd(opts),
		newConvertCmd(opts),
		newUnitsCmd(opts),
		newCSSCmd(opts),
		newFormatCmd(opts),
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newBaseCmd(opts),
		newHashCmd(opts),
		newJWTCmd(opts),
		newUUIDCmd(opts),
		newULIDCmd(opts),
		newPasswordCmd(opts),
		newLoremCmd(opts),
		newSlugCmd(opts),
		newTimeCmd(opts),
		newVersionCmd(opts),
	)
	return cmd
}
