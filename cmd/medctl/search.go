package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"medlocator/internal/domain/entity"
	"medlocator/internal/usecase"

	"github.com/spf13/cobra"
)

type searchOptions struct {
	lat    float64
	lng    float64
	radius float64
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <medicine>",
		Short: "Find in-stock medicine near a position, nearest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withComponents(cmd.Context(), root, func(c *components) error {
				radius := opts.radius
				if !cmd.Flags().Changed("radius") {
					radius = defaultRadius(c)
				}

				results, err := c.Locator.FindNearbyMedicine(cmd.Context(), args[0], opts.lat, opts.lng, radius)
				if err != nil {
					return err
				}

				return printLocations(cmd.OutOrStdout(), results)
			})
		},
	}
	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "Searcher latitude in degrees")
	cmd.Flags().Float64Var(&opts.lng, "lng", 0, "Searcher longitude in degrees")
	cmd.Flags().Float64Var(&opts.radius, "radius", usecase.DefaultSearchRadiusKm, "Search radius in kilometers")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}

func defaultRadius(c *components) float64 {
	if c.Config != nil && c.Config.Locator != nil && c.Config.Locator.DefaultRadiusKm > 0 {
		return c.Config.Locator.DefaultRadiusKm
	}

	return usecase.DefaultSearchRadiusKm
}

func printLocations(w io.Writer, results []*entity.MedicineLocation) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No matching medicine in range.")

		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DISTANCE\tMEDICINE\tDOSAGE\tQTY\tCLINIC\tADDRESS")
	for _, r := range results {
		fmt.Fprintf(tw, "%.2f km\t%s\t%s\t%d\t%s\t%s\n",
			r.DistanceKm,
			r.Inventory.MedicineName,
			r.Inventory.Dosage,
			r.Inventory.Quantity,
			r.Clinic.Name,
			r.Clinic.Address,
		)
	}

	return tw.Flush()
}
