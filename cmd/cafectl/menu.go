package main

import (
	"fmt"
	"net/http"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type band struct {
	Category string `json:"category"`
	Base     int    `json:"base"`
	Max      int    `json:"max"`
}

type assignment struct {
	ID        int `json:"id"`
	SortOrder int `json:"sort_order"`
}

func bandsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "Show the sort order band of each category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var bands []band
			if err := e.call(cmd.Context(), http.MethodGet, "/api/categories", &bands); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "%-12s %6s %6s\n", "CATEGORY", "BASE", "MAX")
			for _, b := range bands {
				fmt.Fprintf(e.out, "%-12s %6d %6d\n", b.Category, b.Base, b.Max)
			}
			return nil
		},
	}
}

func recompactCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "recompact",
		Short: "Close the gaps in every category's sort orders",
		Long: `Renumbers each category so its items sit at base, base+1, ...
in their current order. Running it twice changes nothing the second time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp struct {
				Changes []assignment `json:"changes"`
			}
			if err := e.call(cmd.Context(), http.MethodPost, "/api/menus/recompact", &resp); err != nil {
				return err
			}
			if len(resp.Changes) == 0 {
				fmt.Fprintln(e.out, color.GreenString("✓"), "already compact")
				return nil
			}
			for _, c := range resp.Changes {
				fmt.Fprintf(e.out, "menu %s -> %d\n", color.CyanString("#%d", c.ID), c.SortOrder)
			}
			fmt.Fprintln(e.out, color.GreenString("✓"), fmt.Sprintf("%d items renumbered", len(resp.Changes)))
			return nil
		},
	}
}
