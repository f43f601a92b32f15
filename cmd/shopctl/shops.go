package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"shopconsole/internal/domain/shop"
	"shopconsole/internal/listing"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var shopsCmd = &cobra.Command{
	Use:   "shops",
	Short: "List and inspect shops",
}

var (
	listPage      int
	listSort      string
	listFilters   string
	listSearch    string
	inVacations   string
	createdAfter  string
	createdBefore string
)

var shopsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shops (search > sort > filters > plain)",
	Long: `List one page of shops.

Only one listing mode is sent to the backend. A search wins over a sort,
which wins over filters. Filters given with --in-vacations, --created-after
and --created-before are merged into --filters.`,
	RunE: runShopsList,
}

var shopsGetCmd = &cobra.Command{
	Use:   "get <id>...",
	Short: "Show one or more shops",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShopsGet,
}

var shopsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid shop id %q", args[0])
		}
		if err := api.DeleteShop(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "shop %d deleted\n", id)
		return nil
	},
}

func init() {
	f := shopsListCmd.Flags()
	f.IntVar(&listPage, "page", 1, "page to show (1-based)")
	f.StringVar(&listSort, "sort", "", "sort field: name, createdAt or nbProducts")
	f.StringVar(&listFilters, "filters", "", "raw filter string, e.g. &inVacations=true")
	f.StringVar(&listSearch, "search", "", "full-text query")
	f.StringVar(&inVacations, "in-vacations", "", "filter on vacation status (true/false)")
	f.StringVar(&createdAfter, "created-after", "", "filter on creation date (YYYY-MM-DD)")
	f.StringVar(&createdBefore, "created-before", "", "filter on creation date (YYYY-MM-DD)")

	shopsCmd.AddCommand(shopsListCmd, shopsGetCmd, shopsDeleteCmd)
}

// stateFromFlags builds the listing selections from the command line.
func stateFromFlags() (listing.State, error) {
	filters := listFilters
	fp := listing.ParseFilters(listFilters)
	if inVacations != "" {
		v, err := strconv.ParseBool(inVacations)
		if err != nil {
			return listing.State{}, fmt.Errorf("invalid --in-vacations %q", inVacations)
		}
		fp.InVacations = &v
	}
	if createdAfter != "" {
		fp.CreatedAfter = createdAfter
	}
	if createdBefore != "" {
		fp.CreatedBefore = createdBefore
	}
	// the raw string is sent untouched unless a dedicated flag changes it
	if inVacations != "" || createdAfter != "" || createdBefore != "" {
		filters = fp.String()
	}
	if listSort != "" && !validSort(listSort) {
		return listing.State{}, fmt.Errorf("invalid --sort %q", listSort)
	}
	return listing.State{
		Page:    listPage - 1,
		Sort:    listSort,
		Filters: filters,
		Search:  listSearch,
	}, nil
}

func validSort(field string) bool {
	for _, f := range shop.SortFields() {
		if f == field {
			return true
		}
	}
	return false
}

func runShopsList(cmd *cobra.Command, args []string) error {
	st, err := stateFromFlags()
	if err != nil {
		return err
	}
	ctrl := listing.NewController[shop.Shop](api, listing.Options{
		Name:         "shops",
		PageSize:     pageSize,
		EmptyMessage: "Aucune boutique correspondante",
	})
	ctrl.Restore(st)
	view, err := ctrl.Refresh(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd, view)
	}
	if view.Empty {
		fmt.Fprintln(cmd.OutOrStdout(), view.EmptyMessage)
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tVACATIONS\tCREATED\tPRODUCTS")
	for _, s := range view.Items {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%s\t%s\n", s.ID, s.Name, s.InVacations, s.CreatedAt, optInt(s.NbProducts))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(cmd, view.Page, view.Count)
	return nil
}

func runShopsGet(cmd *cobra.Command, args []string) error {
	ids := make([]int64, len(args))
	for i, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid shop id %q", a)
		}
		ids[i] = id
	}

	shops := make([]*shop.Shop, len(ids))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			s, err := api.GetShop(ctx, id)
			if err != nil {
				return fmt.Errorf("shop %d: %w", id, err)
			}
			shops[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd, shops)
	}
	out := cmd.OutOrStdout()
	for _, s := range shops {
		fmt.Fprintf(out, "#%d %s\n", s.ID, s.Name)
		fmt.Fprintf(out, "  in vacations: %t\n  created: %s\n  products: %s  categories: %s\n",
			s.InVacations, s.CreatedAt, optInt(s.NbProducts), optInt(s.NbCategories))
		for _, oh := range s.OpeningHours {
			fmt.Fprintf(out, "  day %d: %s-%s\n", oh.Day, oh.OpenAt, oh.CloseAt)
		}
	}
	return nil
}

func optInt(n *int64) string {
	if n == nil {
		return "-"
	}
	return strconv.FormatInt(*n, 10)
}
