package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"shopconsole/internal/backend"
	"shopconsole/internal/domain/page"
	"shopconsole/internal/domain/product"
	"shopconsole/internal/listing"

	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List and inspect products",
}

var (
	productsPage     int
	productsShop     int64
	productsCategory int64
	productsLocale   string
)

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, optionally of one shop or category",
	RunE:  runProductsList,
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a product in the given locale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		p, err := api.GetProduct(cmd.Context(), id)
		if err != nil {
			return err
		}
		f := product.Format(p, productsLocale)
		if jsonOutput {
			return printJSON(cmd, f)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "#%d %s\n  %s\n  price: %s\n", f.ID, f.Name, f.Description, f.PriceLabel)
		if f.Shop != nil {
			fmt.Fprintf(out, "  shop: %s\n", f.Shop.Name)
		}
		if names := f.CategoryNames(); names != "" {
			fmt.Fprintf(out, "  categories: %s\n", names)
		}
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		if err := api.DeleteProduct(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "product %d deleted\n", id)
		return nil
	},
}

func init() {
	productsListCmd.Flags().IntVar(&productsPage, "page", 1, "page to show (1-based)")
	productsListCmd.Flags().Int64Var(&productsShop, "shop", 0, "only products of this shop")
	productsListCmd.Flags().Int64Var(&productsCategory, "category", 0, "only products of this category")
	productsListCmd.Flags().StringVar(&productsLocale, "locale", "fr", "display locale")
	productsGetCmd.Flags().StringVar(&productsLocale, "locale", "fr", "display locale")

	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsDeleteCmd)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	var f backend.ProductFilter
	if productsShop > 0 {
		f.ShopID = &productsShop
	}
	if productsCategory > 0 {
		f.CategoryID = &productsCategory
	}
	p, err := api.ListProducts(cmd.Context(), max(productsPage-1, 0), pageSize, f)
	if err != nil {
		return err
	}
	return printListing(cmd, p, "Aucun produit correspondant", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tNAME\tPRICE")
		for i := range p.Content {
			fp := product.Format(&p.Content[i], productsLocale)
			fmt.Fprintf(tw, "%d\t%s\t%s\n", fp.ID, fp.Name, fp.PriceLabel)
		}
	})
}

// printListing renders one page either as JSON or as a table.
func printListing[T any](cmd *cobra.Command, p *page.Page[T], emptyMessage string, rows func(*tabwriter.Writer)) error {
	view := listing.ViewOf(p, emptyMessage)
	if jsonOutput {
		return printJSON(cmd, view)
	}
	if view.Empty {
		fmt.Fprintln(cmd.OutOrStdout(), view.EmptyMessage)
		return nil
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	rows(tw)
	if err := tw.Flush(); err != nil {
		return err
	}
	pageFooter(cmd, view.Page, view.Count)
	return nil
}
