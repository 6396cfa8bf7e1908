package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"customerlist/internal/listview"
)

var sortFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the customer table once",
	Long:  `Fetch the customer list and print it. --sort accepts desc or asc; the default keeps the shop's order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := listview.ParseSortMode(sortFlag)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		state := listview.State{Sort: mode}
		customers, fetchErr := client.ListCustomers(cmd.Context())
		if fetchErr != nil {
			state = state.Fail(listview.FailureMessage(fetchErr))
		} else {
			state = state.Loaded(customers)
		}

		if err := listview.RenderText(cmd.OutOrStdout(), state, loc); err != nil {
			return err
		}
		if fetchErr != nil {
			return fmt.Errorf("failed to list customers: %w", fetchErr)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&sortFlag, "sort", "", "sort by registration date: desc or asc")
}
