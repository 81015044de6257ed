package quantitygen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/quantities/internal/codegen/table"
	"github.com/smartcontractkit/quantities/pkg/commands/flags"
)

// newListCmd creates the "list" subcommand.
func newListCmd(cfg Config) *cobra.Command {
	var (
		additive bool
		names    []string
		asYAML   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the quantities of the quantity tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filters []table.QuantityFilter
			if additive {
				filters = append(filters, table.AdditiveFilter())
			}
			if len(names) > 0 {
				filters = append(filters, table.NamesFilter(names...))
			}

			return runList(cmd, cfg, filters, asYAML)
		},
	}

	flags.Config(cmd)
	cmd.Flags().BoolVar(&additive, "additive", false, "Only list quantities supporting Add and Subtract")
	cmd.Flags().StringSliceVar(&names, "name", nil, "Only list the named quantities")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the merged table as YAML")

	return cmd
}

// runList executes the list command logic.
func runList(cmd *cobra.Command, cfg Config, filters []table.QuantityFilter, asYAML bool) error {
	g, _, err := newGenerator(cmd, cfg)
	if err != nil {
		return err
	}

	t, err := g.Load(filters...)
	if err != nil {
		return err
	}

	if asYAML {
		b, err := yaml.Marshal(t)
		if err != nil {
			return fmt.Errorf("unable to marshal quantity table: %w", err)
		}
		cmd.Print(string(b))

		return nil
	}

	data := make([][]string, 0, len(t.Quantities()))
	for _, q := range t.Quantities() {
		// The owner of shared units may be filtered out, leaving the symbol blank.
		symbol, _ := t.Symbol(q)

		units := strconv.Itoa(len(q.Units))
		if !q.OwnsUnits() {
			units = "of " + q.UnitOf
		}

		data = append(data, []string{q.Name, symbol, units, strings.Join(capabilities(q), ", ")})
	}

	tw := tablewriter.NewWriter(cmd.OutOrStdout())
	tw.SetHeader([]string{"Quantity", "Symbol", "Units", "Capabilities"})
	tw.SetAutoWrapText(false)
	tw.SetBorders(tablewriter.Border{
		Left:   false,
		Right:  false,
		Top:    true,
		Bottom: true,
	})
	tw.AppendBulk(data)
	tw.Render()

	return nil
}

// capabilities describes the optional methods generated for q.
func capabilities(q table.Quantity) []string {
	var caps []string
	if q.Additive {
		caps = append(caps, "additive")
	}
	if q.Cancels {
		caps = append(caps, "cancels")
	}

	for _, c := range []struct{ name, result string }{
		{"invert", q.Invert},
		{"square", q.Square},
		{"square root", q.SquareRoot},
		{"cube", q.Cube},
		{"cube root", q.CubeRoot},
		{"vector", q.Vector},
	} {
		if c.result != "" {
			caps = append(caps, c.name+" "+c.result)
		}
	}

	for _, a := range q.Associated {
		caps = append(caps, "as "+a)
	}

	return caps
}
