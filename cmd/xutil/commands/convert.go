package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/erraggy/xutil/internal/cliutil"
	"github.com/erraggy/xutil/unitconv"
)

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: must be a number", s)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func lookupDomain(name string) (*unitconv.Domain, error) {
	d, ok := unitconv.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown domain %q. Supported domains: %s", name, strings.Join(unitconv.Names(), ", "))
	}
	return d, nil
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var (
		to       string
		valueArg string
	)

	cmd := &cobra.Command{
		Use:   "convert <domain> [value] <unit>",
		Short: "Convert a value to every unit of a domain",
		Long: `Convert a value to every unit of a domain, or only to the unit given by --to.

A negative value looks like a flag on the command line, so pass it with
--value (or after "--"). Results are rounded to 8 decimal places
(temperature: 4). Run "xutil units" to list domains and units.`,
		Example: `  xutil convert length 1 km
  xutil convert temperature 100 celsius --to fahrenheit
  xutil convert temperature celsius --value -40 --to fahrenheit
  xutil convert temperature -- -40 celsius
  xutil convert bit-byte 1 GB -f json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("value") {
				if len(args) != 2 {
					return fmt.Errorf("with --value, accepts 2 arg(s) <domain> <unit>, received %d", len(args))
				}
				return nil
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookupDomain(args[0])
			if err != nil {
				return err
			}
			raw, unit := valueArg, args[1]
			if len(args) == 3 {
				raw, unit = args[1], args[2]
			}
			value, err := parseValue(raw)
			if err != nil {
				return err
			}

			if to != "" {
				v, err := d.ConvertBetween(value, unit, to)
				if err != nil {
					return err
				}
				target, _ := d.Resolve(to)
				return opts.output(cmd, map[string]float64{target: v}, formatFloat(v)+" "+target)
			}

			res, err := d.Convert(value, unit)
			if err != nil {
				return err
			}
			return opts.outputFunc(cmd, res, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				for _, u := range res.Units() {
					v, _ := res.Get(u)
					cliutil.Writef(tw, "%s\t%s\n", u, formatFloat(v))
				}
				_ = tw.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "only print the value in this unit")
	cmd.Flags().StringVar(&valueArg, "value", "", "value to convert, for negative numbers")
	return cmd
}

type domainInfo struct {
	Name       string   `json:"name" yaml:"name"`
	Title      string   `json:"title" yaml:"title"`
	Canonical  string   `json:"canonical" yaml:"canonical"`
	Precision  int      `json:"precision" yaml:"precision"`
	Constraint string   `json:"constraint" yaml:"constraint"`
	Units      []string `json:"units" yaml:"units"`
}

func newUnitsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "units [domain]",
		Short:   "List conversion domains and their units",
		Example: "  xutil units\n  xutil units temperature -f yaml",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domains := unitconv.Domains()
			if len(args) == 1 {
				d, err := lookupDomain(args[0])
				if err != nil {
					return err
				}
				domains = []*unitconv.Domain{d}
			}

			infos := make([]domainInfo, 0, len(domains))
			for _, d := range domains {
				infos = append(infos, domainInfo{
					Name:       d.Name(),
					Title:      d.Title(),
					Canonical:  d.Canonical(),
					Precision:  d.Precision(),
					Constraint: d.Constraint().String(),
					Units:      d.Units(),
				})
			}
			return opts.outputFunc(cmd, infos, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				cliutil.Writef(tw, "DOMAIN\tCANONICAL\tUNITS\n")
				for _, d := range infos {
					cliutil.Writef(tw, "%s\t%s\t%s\n", d.Name, d.Canonical, strings.Join(d.Units, ", "))
				}
				_ = tw.Flush()
			})
		},
	}
}

func newCSSCmd(opts *rootOptions) *cobra.Command {
	var root, parent float64

	cmd := &cobra.Command{
		Use:   "css <px|rem|em> <value>",
		Short: "Convert a CSS length between px, rem and em",
		Example: `  xutil css px 24
  xutil css rem 1.5 --root 10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := map[string]unitconv.CSSKind{
				"px":  unitconv.PxToRemEm,
				"rem": unitconv.RemToPxEm,
				"em":  unitconv.EmToPxRem,
			}
			kind, ok := kinds[strings.ToLower(args[0])]
			if !ok {
				kind = unitconv.CSSKind(args[0])
			}
			value, err := parseValue(args[1])
			if err != nil {
				return err
			}
			res, err := unitconv.ConvertCSS(kind, value, root, parent)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("%spx = %srem = %sem", formatFloat(res.Px), formatFloat(res.Rem), formatFloat(res.Em))
			return opts.output(cmd, res, line)
		},
	}
	cmd.Flags().Float64Var(&root, "root", unitconv.DefaultFontSize, "root font size in px")
	cmd.Flags().Float64Var(&parent, "parent", unitconv.DefaultFontSize, "parent font size in px")
	return cmd
}
