package main

import (
	"fmt"
	"school-directory-service/internal/bootstrap"
	"school-directory-service/internal/services"

	"github.com/spf13/cobra"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the name key each school is ordered by",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dir, closeDir, err := bootstrap.OpenDirectory(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDir()

			schools, err := dir.ListSchools(cmd.Context())
			if err != nil {
				return err
			}

			sorted, err := services.SortAlphabetically(schools)
			if err != nil {
				return err
			}

			for _, s := range sorted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", services.SortKey(s.Name), s.Name)
			}
			return nil
		},
	}
}
