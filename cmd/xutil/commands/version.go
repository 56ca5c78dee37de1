package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/erraggy/xutil"
	"github.com/erraggy/xutil/internal/cliutil"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := map[string]string{
				"version":    xutil.Version(),
				"commit":     xutil.Commit(),
				"build_time": xutil.BuildTime(),
				"go_version": xutil.GoVersion(),
			}
			return opts.outputFunc(cmd, info, func(w io.Writer) {
				cliutil.Writef(w, "xutil %s\n", xutil.Version())
				cliutil.Writef(w, "%s", xutil.BuildInfo())
			})
		},
	}
}
