package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/xutil/textutil"
)

func newLoremCmd(opts *rootOptions) *cobra.Command {
	var req textutil.LoremRequest

	cmd := &cobra.Command{
		Use:     "lorem",
		Short:   "Generate Lorem Ipsum placeholder text",
		Example: "  xutil lorem\n  xutil lorem -t word -n 5\n  xutil lorem -t paragraph -n 3 --html",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if html, _ := cmd.Flags().GetBool("html"); html {
				req.Format = textutil.FormatHTML
			}
			content, err := textutil.Lorem(req)
			if err != nil {
				return err
			}
			return opts.output(cmd, map[string]string{"content": content}, content)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP((*string)(&req.Type), "type", "t", string(textutil.Paragraphs), "paragraph, sentence or word")
	fs.IntVarP(&req.Count, "count", "n", 1, "number of units")
	fs.Bool("html", false, "wrap output in <p> tags")
	return cmd
}

func newSlugCmd(opts *rootOptions) *cobra.Command {
	var (
		slugOpts textutil.SlugOptions
		upper    bool
	)

	cmd := &cobra.Command{
		Use:     "slug [text...]",
		Short:   "Turn text into a URL slug",
		Example: "  xutil slug \"Héllo World!\"\n  xutil slug -s _ --upper My Title",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			if upper {
				slugOpts.Case = textutil.Upper
			}
			slug, err := textutil.Slugify(text, slugOpts)
			if err != nil {
				return err
			}
			return opts.output(cmd, map[string]string{"slug": slug}, slug)
		},
	}
	cmd.Flags().StringVarP(&slugOpts.Separator, "separator", "s", "-", "separator: -, _ or .")
	cmd.Flags().BoolVar(&upper, "upper", false, "upper-case the slug")
	return cmd
}
