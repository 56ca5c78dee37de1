package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/xutil/unitconv"
	"github.com/erraggy/xutil/xuerrors"
)

type convertUnitsInput struct {
	Domain string  `json:"domain"       jsonschema:"Conversion domain, e.g. length, temperature, bit-byte. See list_units."`
	Value  float64 `json:"value"        jsonschema:"Value to convert"`
	Unit   string  `json:"unit"         jsonschema:"Unit of value, e.g. km or celsius"`
	To     string  `json:"to,omitempty" jsonschema:"Only return the value in this unit"`
}

type convertUnitsOutput struct {
	Domain string             `json:"domain"`
	From   string             `json:"from"`
	Value  float64            `json:"value"`
	Units  []string           `json:"units,omitempty"`
	Values map[string]float64 `json:"values,omitempty"`
	To     string             `json:"to,omitempty"`
	Result *float64           `json:"result,omitempty"`
}

func lookupDomain(name string) (*unitconv.Domain, error) {
	d, ok := unitconv.Lookup(name)
	if !ok {
		return nil, xuerrors.Input("domain", "unknown domain %q, expected one of %v", name, unitconv.Names())
	}
	return d, nil
}

func handleConvertUnits(_ context.Context, _ *mcp.CallToolRequest, input convertUnitsInput) (*mcp.CallToolResult, convertUnitsOutput, error) {
	d, err := lookupDomain(input.Domain)
	if err != nil {
		return errResult(err), convertUnitsOutput{}, nil
	}

	if input.To != "" {
		v, err := d.ConvertBetween(input.Value, input.Unit, input.To)
		if err != nil {
			return errResult(err), convertUnitsOutput{}, nil
		}
		from, _ := d.Resolve(input.Unit)
		to, _ := d.Resolve(input.To)
		return nil, convertUnitsOutput{
			Domain: d.Name(),
			From:   from,
			Value:  input.Value,
			To:     to,
			Result: &v,
		}, nil
	}

	res, err := d.Convert(input.Value, input.Unit)
	if err != nil {
		return errResult(err), convertUnitsOutput{}, nil
	}
	return nil, convertUnitsOutput{
		Domain: res.Domain,
		From:   res.From,
		Value:  res.Value,
		Units:  res.Units(),
		Values: res.Map(),
	}, nil
}

type listUnitsInput struct {
	Domain string `json:"domain,omitempty" jsonschema:"Describe only this domain"`
}

type domainSummary struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Canonical  string   `json:"canonical"`
	Precision  int      `json:"precision"`
	Constraint string   `json:"constraint"`
	Units      []string `json:"units"`
}

type listUnitsOutput struct {
	Domains []domainSummary `json:"domains"`
}

func summarize(d *unitconv.Domain) domainSummary {
	return domainSummary{
		Name:       d.Name(),
		Title:      d.Title(),
		Canonical:  d.Canonical(),
		Precision:  d.Precision(),
		Constraint: d.Constraint().String(),
		Units:      d.Units(),
	}
}

func handleListUnits(_ context.Context, _ *mcp.CallToolRequest, input listUnitsInput) (*mcp.CallToolResult, listUnitsOutput, error) {
	if input.Domain != "" {
		d, err := lookupDomain(input.Domain)
		if err != nil {
			return errResult(err), listUnitsOutput{}, nil
		}
		return nil, listUnitsOutput{Domains: []domainSummary{summarize(d)}}, nil
	}

	domains := unitconv.Domains()
	output := listUnitsOutput{Domains: makeSlice[domainSummary](len(domains))}
	for _, d := range domains {
		output.Domains = append(output.Domains, summarize(d))
	}
	return nil, output, nil
}

type convertCSSInput struct {
	Kind           string  `json:"kind"                       jsonschema:"px-to-rem-em\\, rem-to-px-em or em-to-px-rem"`
	Value          float64 `json:"value"                      jsonschema:"Length to convert"`
	RootFontSize   float64 `json:"root_font_size,omitempty"   jsonschema:"Root font size in px (default 16)"`
	ParentFontSize float64 `json:"parent_font_size,omitempty" jsonschema:"Parent font size in px (default 16)"`
}

func handleConvertCSS(_ context.Context, _ *mcp.CallToolRequest, input convertCSSInput) (*mcp.CallToolResult, unitconv.CSSResult, error) {
	// Zero means the field was omitted.
	if input.RootFontSize == 0 {
		input.RootFontSize = unitconv.DefaultFontSize
	}
	if input.ParentFontSize == 0 {
		input.ParentFontSize = unitconv.DefaultFontSize
	}
	res, err := unitconv.ConvertCSS(unitconv.CSSKind(input.Kind), input.Value, input.RootFontSize, input.ParentFontSize)
	if err != nil {
		return errResult(err), unitconv.CSSResult{}, nil
	}
	return nil, res, nil
}
