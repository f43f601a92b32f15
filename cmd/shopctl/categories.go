package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoriesPage int

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := api.ListCategories(cmd.Context(), max(categoriesPage-1, 0), pageSize)
		if err != nil {
			return err
		}
		return printListing(cmd, p, "Aucune catégorie correspondante", func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "ID\tNAME")
			for _, c := range p.Content {
				fmt.Fprintf(tw, "%d\t%s\n", c.ID, c.Name)
			}
		})
	},
}

var (
	pingWait bool
	pingMax  string
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the backend answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pingWait {
			d, err := parseWait(pingMax)
			if err != nil {
				return err
			}
			if err := api.WaitReady(cmd.Context(), d); err != nil {
				return err
			}
		} else if err := api.Ping(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "backend ok")
		return nil
	},
}

func init() {
	categoriesCmd.Flags().IntVar(&categoriesPage, "page", 1, "page to show (1-based)")
	pingCmd.Flags().BoolVar(&pingWait, "wait", false, "retry with backoff until the backend is ready")
	pingCmd.Flags().StringVar(&pingMax, "max-wait", "30s", "give up after this long when --wait is set")
}
