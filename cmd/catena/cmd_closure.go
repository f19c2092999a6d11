package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// closureCmd prints a category's full axiom chain: the category itself and
// every more-general structure it transitively satisfies, in resolution
// order.
var closureCmd = &cobra.Command{
	Use:   "closure [category]",
	Short: "Print a category's full axiom chain",
	Long: `Resolves the transitive closure of a category's super-category graph and
prints it in resolution order: the category first, then increasingly
general structures, terminating at the objects root.

Example:
  catena closure modules --ring ZZ
  catena closure bimodules --left ZZ --right QQ`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := selectNode(args[0])
		if err != nil {
			return err
		}

		chain, err := n.AllSuperCategories()
		if err != nil {
			return err
		}
		logger.Debug("resolved closure",
			zap.String("node", n.Key()),
			zap.Int("count", len(chain)))

		fmt.Println(titleStyle.Render(fmt.Sprintf("Axiom chain of %s", n)))
		for i, c := range chain {
			fmt.Printf("  %s %s %s\n",
				indexStyle.Render(fmt.Sprintf("%2d.", i+1)),
				nodeStyle.Render(c.String()),
				keyStyle.Render("["+c.Key()+"]"))
		}
		return nil
	},
}
