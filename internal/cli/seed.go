package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"african-animals/internal/domain/animals"
)

// SeedCmd reemplaza todos los animales por el set inicial.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace every animal with the starter set",
		Long: `Delete all animals and insert the five starter records.

Same operation as GET /animals/seed, run against DATABASE_URL directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			a, err := bootstrap(ctx, envFileFrom(cmd), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close(context.Background())

			created, err := animals.NewService(a.store.Animals, a.log).Seed(ctx)
			if err != nil {
				return err
			}

			printSeeded(cmd.OutOrStdout(), string(a.store.Backend), created)
			return nil
		},
	}
}

func printSeeded(out io.Writer, backend string, created []animals.Animal) {
	fmt.Fprintf(out, "%s %d animals into %s\n",
		color.New(color.FgGreen, color.Bold).Sprint("Seeded"),
		len(created),
		color.New(color.FgCyan).Sprint(backend),
	)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tSPECIES\tLOCATION\tYEARS")
	fmt.Fprintln(w, "  --\t-------\t--------\t-----")
	for _, a := range created {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
			color.New(color.FgYellow).Sprint(a.ID),
			a.Species,
			a.Location,
			strconv.FormatFloat(a.LifeExpectancy, 'f', -1, 64),
		)
	}
	w.Flush()
}
