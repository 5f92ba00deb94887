// Insight commands for the lawg CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lawgdev/lawg-go/pkg/types"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Manage a project's insights",
}

var insightCreateTitle string

var insightCreateCmd = &cobra.Command{
	Use:   "create <namespace>",
	Short: "Create an insight in a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params := types.CreateInsightParams{Title: insightCreateTitle}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			params.Description = types.Some(v)
		}
		if cmd.Flags().Changed("emoji") {
			v, _ := cmd.Flags().GetString("emoji")
			params.Emoji = types.Some(v)
		}
		if cmd.Flags().Changed("value") {
			v, _ := cmd.Flags().GetFloat64("value")
			params.Value = types.Some(v)
		}
		insight, err := client.CreateInsight(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(insight.Record())
		}
		fmt.Printf("Created insight: %s\n", insight.ID())
		return nil
	},
}

var insightGetCmd = &cobra.Command{
	Use:   "get <namespace> <id>",
	Short: "Display an insight",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		insight, err := client.FetchInsight(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(insight.Record())
		}
		printInsight(insight.Record())
		return nil
	},
}

var insightListCmd = &cobra.Command{
	Use:   "list <namespace>",
	Short: "List a project's insights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		insights, err := client.FetchInsights(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			records := make([]types.Insight, len(insights))
			for i, in := range insights {
				records[i] = in.Record()
			}
			return printJSON(records)
		}
		w := newTable([]string{"ID", "TITLE", "VALUE", "EMOJI"})
		for _, in := range insights {
			rec := in.Record()
			w.Append([]string{
				rec.ID,
				rec.Title,
				strconv.FormatFloat(rec.Value, 'f', -1, 64),
				strOrDash(rec.Emoji),
			})
		}
		w.Render()
		return nil
	},
}

var insightEditCmd = &cobra.Command{
	Use:   "edit <namespace> <id>",
	Short: "Change an insight's fields or adjust its value",
	Long: `Edit changes an insight's title, description, or emoji, and adjusts
its value. --set overwrites the value, --increment adds to it (negative
deltas subtract), --clear-value resets it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := types.EditInsightParams{
			Title:       patchString(cmd, "title"),
			Description: patchString(cmd, "description"),
			Emoji:       patchString(cmd, "emoji"),
		}
		switch {
		case cmd.Flags().Changed("set"):
			v, _ := cmd.Flags().GetFloat64("set")
			params.Value = types.Some(types.SetValue(v))
		case cmd.Flags().Changed("increment"):
			v, _ := cmd.Flags().GetFloat64("increment")
			params.Value = types.Some(types.IncrementValue(v))
		case cmd.Flags().Changed("clear-value"):
			params.Value = types.Null[types.InsightValue]()
		}
		if !params.Title.Specified() && !params.Description.Specified() &&
			!params.Emoji.Specified() && !params.Value.Specified() {
			return fmt.Errorf("specify at least one field to change")
		}
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		insight, err := client.EditInsight(cmd.Context(), args[0], args[1], params)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(insight.Record())
		}
		fmt.Printf("Updated insight: %s\n", insight.ID())
		return nil
	},
}

var insightDeleteCmd = &cobra.Command{
	Use:   "delete <namespace> <id>",
	Short: "Delete an insight",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.DeleteInsight(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		if !flagJSON {
			fmt.Printf("Deleted insight: %s\n", args[1])
		}
		return nil
	},
}

func init() {
	insightCreateCmd.Flags().StringVar(&insightCreateTitle, "title", "", "insight title (required)")
	insightCreateCmd.Flags().String("description", "", "insight description")
	insightCreateCmd.Flags().String("emoji", "", "insight emoji")
	insightCreateCmd.Flags().Float64("value", 0, "initial value")
	_ = insightCreateCmd.MarkFlagRequired("title")

	insightEditCmd.Flags().String("title", "", "new title")
	insightEditCmd.Flags().String("description", "", "new description")
	insightEditCmd.Flags().Bool("clear-description", false, "remove the description")
	insightEditCmd.Flags().String("emoji", "", "new emoji")
	insightEditCmd.Flags().Bool("clear-emoji", false, "remove the emoji")
	insightEditCmd.Flags().Float64("set", 0, "overwrite the value")
	insightEditCmd.Flags().Float64("increment", 0, "adjust the value by a delta")
	insightEditCmd.Flags().Bool("clear-value", false, "reset the value")
	insightEditCmd.MarkFlagsMutuallyExclusive("description", "clear-description")
	insightEditCmd.MarkFlagsMutuallyExclusive("emoji", "clear-emoji")
	insightEditCmd.MarkFlagsMutuallyExclusive("set", "increment", "clear-value")

	insightCmd.AddCommand(insightCreateCmd)
	insightCmd.AddCommand(insightGetCmd)
	insightCmd.AddCommand(insightListCmd)
	insightCmd.AddCommand(insightEditCmd)
	insightCmd.AddCommand(insightDeleteCmd)
}
