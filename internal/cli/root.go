package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd arma el comando raíz; sin subcomando equivale a serve.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "african-animals",
		Short: "Animals of Africa - server-rendered CRUD over African species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFileFrom(cmd))
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading the environment (missing file is ignored)")

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(SeedCmd())

	return rootCmd
}

func envFileFrom(cmd *cobra.Command) string {
	v, err := cmd.Flags().GetString("env-file")
	if err != nil || v == "" {
		return ".env"
	}
	return v
}
