// Feed commands for the lawg CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawgdev/lawg-go/pkg/types"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Manage a project's feeds",
}

var feedCreateCmd = &cobra.Command{
	Use:   "create <namespace> <name>",
	Short: "Create a feed in a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params := types.CreateFeedParams{Name: args[1]}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			params.Description = types.Some(v)
		}
		if cmd.Flags().Changed("emoji") {
			v, _ := cmd.Flags().GetString("emoji")
			params.Emoji = types.Some(v)
		}
		feed, err := client.CreateFeed(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(feed.Record())
		}
		fmt.Printf("Created feed: %s\n", feed.Name())
		return nil
	},
}

var feedEditCmd = &cobra.Command{
	Use:   "edit <namespace> <name>",
	Short: "Change a feed's name, description, or emoji",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := types.EditFeedParams{
			Name:        patchString(cmd, "name"),
			Description: patchString(cmd, "description"),
			Emoji:       patchString(cmd, "emoji"),
		}
		if !params.Name.Specified() && !params.Description.Specified() && !params.Emoji.Specified() {
			return fmt.Errorf("specify at least one field to change")
		}
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		feed, err := client.EditFeed(cmd.Context(), args[0], args[1], params)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(feed.Record())
		}
		fmt.Printf("Updated feed: %s\n", feed.Name())
		return nil
	},
}

var feedDeleteCmd = &cobra.Command{
	Use:   "delete <namespace> <name>",
	Short: "Delete a feed and its logs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.DeleteFeed(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		if !flagJSON {
			fmt.Printf("Deleted feed: %s\n", args[1])
		}
		return nil
	},
}

func init() {
	feedCreateCmd.Flags().String("description", "", "feed description")
	feedCreateCmd.Flags().String("emoji", "", "feed emoji")

	feedEditCmd.Flags().String("name", "", "new feed name")
	feedEditCmd.Flags().String("description", "", "new description")
	feedEditCmd.Flags().Bool("clear-description", false, "remove the description")
	feedEditCmd.Flags().String("emoji", "", "new emoji")
	feedEditCmd.Flags().Bool("clear-emoji", false, "remove the emoji")
	feedEditCmd.MarkFlagsMutuallyExclusive("description", "clear-description")
	feedEditCmd.MarkFlagsMutuallyExclusive("emoji", "clear-emoji")

	feedCmd.AddCommand(feedCreateCmd)
	feedCmd.AddCommand(feedEditCmd)
	feedCmd.AddCommand(feedDeleteCmd)
}
