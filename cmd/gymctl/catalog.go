package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/routines"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the exercise catalog",
	}
	cmd.AddCommand(catalogImportCmd())
	cmd.AddCommand(catalogListCmd())
	return cmd
}

func catalogImportCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Add or replace catalog exercises from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			exercises, err := routines.ReadCatalogFile(f)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Printf("%d exercises valid, nothing written\n", len(exercises))
				return nil
			}

			ctx := cmd.Context()
			opened, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer opened.Close()

			service := routines.NewService(routines.NewRepo(opened.Store))
			for _, ex := range exercises {
				added, err := service.AddCatalogExercise(ctx, ex)
				if err != nil {
					return fmt.Errorf("import %s: %w", ex.Name, err)
				}
				fmt.Printf("%s\t%s\n", added.ID, added.Name)
			}
			fmt.Printf("imported %d exercises\n", len(exercises))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only validate the file")
	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the exercise catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opened, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer opened.Close()

			catalog, err := routines.NewService(routines.NewRepo(opened.Store)).Catalog(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSETS\tREPS\tTYPE")
			for _, ex := range catalog {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", ex.ID, ex.Name, ex.Sets, ex.Reps, ex.Type)
			}
			return w.Flush()
		},
	}
}
