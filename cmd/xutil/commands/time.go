package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/xutil/internal/cliutil"
	"github.com/erraggy/xutil/timeconv"
)

func newTimeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Convert Unix timestamps and time zones",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:     "unix <timestamp>",
			Short:   "Format a Unix timestamp in seconds as UTC",
			Example: "  xutil time unix 1705320000",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ts, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid timestamp %q", args[0])
				}
				res, err := timeconv.UnixFloatToUTC(ts)
				if err != nil {
					return err
				}
				return opts.output(cmd, res, res.DatetimeUTC)
			},
		},
		&cobra.Command{
			Use:     "utc <YYYY-MM-DD HH:MM:SS>",
			Short:   "Convert a UTC date-time to a Unix timestamp",
			Example: `  xutil time utc "2024-01-15 12:00:00"`,
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := timeconv.UTCToUnix(strings.Join(args, " "))
				if err != nil {
					return err
				}
				return opts.output(cmd, res, strconv.FormatInt(res.Timestamp, 10))
			},
		},
		newTZCmd(opts),
	)
	return cmd
}

func newTZCmd(opts *rootOptions) *cobra.Command {
	var from, to string
	var list bool

	cmd := &cobra.Command{
		Use:   "tz [YYYY-MM-DD HH:MM:SS]",
		Short: "Convert a wall-clock time between IANA time zones",
		Example: `  xutil time tz --from UTC --to Asia/Tokyo "2024-01-15 12:00:00"
  xutil time tz --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				zones := timeconv.Timezones()
				return opts.outputFunc(cmd, zones, func(w io.Writer) {
					for _, z := range zones {
						cliutil.Writef(w, "%s\n", z)
					}
				})
			}
			if len(args) == 0 {
				return fmt.Errorf("a date-time is required unless --list is set")
			}
			res, err := timeconv.ConvertTimezone(strings.Join(args, " "), from, to)
			if err != nil {
				return err
			}
			return opts.output(cmd, res, res.Result)
		},
	}
	cmd.Flags().StringVar(&from, "from", "UTC", "source time zone")
	cmd.Flags().StringVar(&to, "to", "UTC", "target time zone")
	cmd.Flags().BoolVar(&list, "list", false, "list known time zones")
	return cmd
}
