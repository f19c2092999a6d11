package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"catena/internal/category"
	"catena/internal/introspect"
)

var showEdges bool

// ancestorsCmd answers the same reachability question as closure, but
// through the Datalog introspection kernel: the hierarchy is asserted as
// super_category facts and ancestry is derived by rule evaluation. Useful
// as a cross-check of the resolver and as an example of querying the
// hierarchy declaratively.
var ancestorsCmd = &cobra.Command{
	Use:   "ancestors [category]",
	Short: "Derive a category's ancestors through the Datalog kernel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := selectNode(args[0])
		if err != nil {
			return err
		}

		kernel := introspect.NewKernel(category.DefaultResolver())
		if err := kernel.LoadHierarchy(n); err != nil {
			return err
		}
		ancestors, err := kernel.Ancestors(n)
		if err != nil {
			return err
		}
		logger.Debug("derived ancestors",
			zap.String("node", n.Key()),
			zap.Int("edges", kernel.EdgeCount()),
			zap.Int("ancestors", len(ancestors)))

		fmt.Println(titleStyle.Render(fmt.Sprintf("Derived ancestors of %s", n)))
		for _, a := range ancestors {
			fmt.Printf("  %s\n", nodeStyle.Render(a))
		}

		if showEdges {
			fmt.Println(headerStyle.Render("Asserted edges"))
			for _, e := range kernel.Edges() {
				fmt.Printf("  %s\n", keyStyle.Render(e))
			}
		}
		return nil
	},
}

func init() {
	ancestorsCmd.Flags().BoolVar(&showEdges, "edges", false, "also print the asserted super_category edges")
}
