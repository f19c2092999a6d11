package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"catena/internal/bundle"
	"catena/internal/category"
	"catena/internal/coerce"
)

var roleFlag string

// opsCmd shows the merged generic operation set a concrete object of the
// given category would receive from bundle composition.
var opsCmd = &cobra.Command{
	Use:   "ops [category]",
	Short: "Show the composed operation set for a category and role",
	Long: `Composes the capability bundles along a category's axiom chain and lists
the resulting operation names for the requested role (container, element,
hom or end). This is exactly the operation set a concrete object of that
category would be constructed with.

Example:
  catena ops modules --ring ZZ --role element
  catena ops hom-modules --ring ZZ --role hom`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := selectNode(args[0])
		if err != nil {
			return err
		}
		role, err := parseRole(roleFlag)
		if err != nil {
			return err
		}

		reg := bundle.NewRegistry()
		bundle.RegisterBuiltins(reg, coerce.NewDispatcher(unavailableResolver{}))
		composer := bundle.NewComposer(category.DefaultResolver(), reg)

		ops, err := composer.Compose(n, role)
		if err != nil {
			return err
		}
		logger.Debug("composed operations",
			zap.String("node", n.Key()),
			zap.String("role", role.String()),
			zap.Int("count", len(ops)))

		fmt.Println(titleStyle.Render(fmt.Sprintf("%s operations of %s", role, n)))
		if len(ops) == 0 {
			fmt.Println(keyStyle.Render("  (none)"))
			return nil
		}
		names := make([]string, 0, len(ops))
		for name := range ops {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s\n", nodeStyle.Render(name))
		}
		return nil
	},
}

func parseRole(s string) (bundle.Role, error) {
	switch s {
	case "container":
		return bundle.RoleContainer, nil
	case "element":
		return bundle.RoleElement, nil
	case "hom":
		return bundle.RoleHom, nil
	case "end":
		return bundle.RoleEnd, nil
	default:
		return 0, fmt.Errorf("unknown role %q (want container, element, hom or end)", s)
	}
}

func init() {
	opsCmd.Flags().StringVar(&roleFlag, "role", "element", "operation role to compose")
}
