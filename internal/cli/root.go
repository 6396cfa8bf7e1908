package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"customerlist/internal/apiclient"
	"customerlist/internal/config"
)

var (
	apiURL  string
	loc     *time.Location
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "customers",
	Short: "Terminal client for the customer list API",
	Long: `customers talks to the customer list API and shows the shop's first
ten customers as a table, sortable by registration date.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loc = config.Load().Location()
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "customers %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "customer list API base URL (env CUSTOMERS_API_URL)")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func defaultAPIURL() string {
	if v := os.Getenv("CUSTOMERS_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func newClient() (*apiclient.Client, error) {
	return apiclient.New(apiURL)
}

func SetVersion(v string) {
	version = v
}

func Execute() error {
	return rootCmd.Execute()
}

func Root() *cobra.Command {
	return rootCmd
}
