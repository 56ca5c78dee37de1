package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/erraggy/xutil/generate"
	"github.com/erraggy/xutil/internal/cliutil"
)

func idCmd(opts *rootOptions, use, short string, gen func(int) ([]string, error)) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := gen(count)
			if err != nil {
				return err
			}
			return opts.outputFunc(cmd, ids, func(w io.Writer) {
				for _, id := range ids {
					cliutil.Writef(w, "%s\n", id)
				}
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of IDs to generate")
	return cmd
}

func newUUIDCmd(opts *rootOptions) *cobra.Command {
	cmd := idCmd(opts, "uuid", "Generate random version 4 UUIDs", generate.UUIDs)
	cmd.Aliases = []string{"guid"}
	return cmd
}

func newULIDCmd(opts *rootOptions) *cobra.Command {
	cmd := idCmd(opts, "ulid", "Generate ULIDs", generate.ULIDs)
	cmd.Long = "Generate ULIDs. IDs from one invocation sort in generation order."
	return cmd
}

func newPasswordCmd(opts *rootOptions) *cobra.Command {
	var (
		length                                   int
		noNumbers, noSpecial, noUpper, noLower bool
	)

	cmd := &cobra.Command{
		Use:     "password",
		Short:   "Generate a random password",
		Long:    "Generate a random password holding at least one character of every enabled class.",
		Example: "  xutil password\n  xutil password -l 24 --no-special",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := generate.Password(generate.PasswordOptions{
				Length:           length,
				IncludeNumbers:   !noNumbers,
				IncludeSpecial:   !noSpecial,
				IncludeUppercase: !noUpper,
				IncludeLowercase: !noLower,
			})
			if err != nil {
				return err
			}
			return opts.output(cmd, map[string]string{"password": pw}, pw)
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&length, "length", "l", 16, "password length (8-128)")
	fs.BoolVar(&noNumbers, "no-numbers", false, "leave out digits")
	fs.BoolVar(&noSpecial, "no-special", false, "leave out punctuation")
	fs.BoolVar(&noUpper, "no-uppercase", false, "leave out upper-case letters")
	fs.BoolVar(&noLower, "no-lowercase", false, "leave out lower-case letters")
	return cmd
}
