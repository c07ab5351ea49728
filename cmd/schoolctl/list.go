package main

import (
	"encoding/json"
	"fmt"
	"io"
	"school-directory-service/internal/bootstrap"
	"school-directory-service/internal/domain"
	"school-directory-service/internal/services"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type listOptions struct {
	lat, long float64
	search    string
	asJSON    bool
	limit     int
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schools, nearest first when a location is given, otherwise by name",
		Example: `  schoolctl list --search state
  schoolctl list --lat 33.45 --long -112.07 --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var origin *domain.Coordinates
			latSet, longSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("long")
			if latSet != longSet {
				return fmt.Errorf("--lat and --long must be given together")
			}
			if latSet {
				origin = &domain.Coordinates{Lat: opts.lat, Long: opts.long}
			}
			return runList(cmd, opts, origin)
		},
	}

	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "reference latitude in decimal degrees")
	cmd.Flags().Float64Var(&opts.long, "long", 0, "reference longitude in decimal degrees")
	cmd.Flags().StringVar(&opts.search, "search", "", "case-insensitive name filter")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "print at most this many schools (0 = all)")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions, origin *domain.Coordinates) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, closeDir, err := bootstrap.OpenDirectory(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDir()

	catalog := services.NewCatalog(dir, logger)
	if err := catalog.Load(cmd.Context()); err != nil {
		return err
	}

	view, err := catalog.View(origin, opts.search)
	if err != nil {
		return err
	}

	schools := view.Schools
	if opts.limit > 0 && len(schools) > opts.limit {
		schools = schools[:opts.limit]
	}

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(schools)
	}
	return printTable(cmd.OutOrStdout(), schools, origin, view.Strategy)
}

func printTable(w io.Writer, schools []domain.School, origin *domain.Coordinates, strategy services.Strategy) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# order: %s\n", strategy)
	fmt.Fprintln(tw, "ID\tNAME\tCOUNTY\tSTATE\tDISTANCE_KM")

	for _, s := range schools {
		dist := "-"
		if origin != nil && s.Coordinates != nil {
			dist = fmt.Sprintf("%.1f", services.Haversine(*origin, *s.Coordinates))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.DisplayCounty(), s.State, dist)
	}

	return tw.Flush()
}
