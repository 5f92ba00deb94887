// Log commands for the lawg CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawgdev/lawg-go/pkg/types"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage a feed's logs",
}

var logCreateTitle string

var logCreateCmd = &cobra.Command{
	Use:   "create <namespace> <feed>",
	Short: "Append a log to a feed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		params := types.CreateLogParams{Title: logCreateTitle}
		for _, f := range []struct {
			name string
			dst  *types.Optional[string]
		}{
			{"description", &params.Description},
			{"emoji", &params.Emoji},
			{"color", &params.Color},
		} {
			if cmd.Flags().Changed(f.name) {
				v, _ := cmd.Flags().GetString(f.name)
				*f.dst = types.Some(v)
			}
		}
		log, err := client.CreateLog(cmd.Context(), args[0], args[1], params)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(log.Record())
		}
		fmt.Printf("Created log: %s\n", log.ID())
		return nil
	},
}

var logGetCmd = &cobra.Command{
	Use:   "get <namespace> <feed> <id>",
	Short: "Display a log",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		log, err := client.FetchLog(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(log.Record())
		}
		printLog(log.Record())
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:   "list <namespace> <feed>",
	Short: "List a feed's logs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		var filter types.LogFilter
		if cmd.Flags().Changed("limit") {
			v, _ := cmd.Flags().GetInt("limit")
			filter.Limit = types.Some(v)
		}
		if cmd.Flags().Changed("offset") {
			v, _ := cmd.Flags().GetInt("offset")
			filter.Offset = types.Some(v)
		}
		logs, err := client.FetchLogs(cmd.Context(), args[0], args[1], filter)
		if err != nil {
			return err
		}
		if flagJSON {
			records := make([]types.Log, len(logs))
			for i, l := range logs {
				records[i] = l.Record()
			}
			return printJSON(records)
		}
		w := newTable([]string{"ID", "TITLE", "DESCRIPTION", "EMOJI"})
		for _, l := range logs {
			rec := l.Record()
			w.Append([]string{rec.ID, rec.Title, strOrDash(rec.Description), strOrDash(rec.Emoji)})
		}
		w.Render()
		return nil
	},
}

var logEditCmd = &cobra.Command{
	Use:   "edit <namespace> <feed> <id>",
	Short: "Change a log's title, description, emoji, or color",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := types.EditLogParams{
			Title:       patchString(cmd, "title"),
			Description: patchString(cmd, "description"),
			Emoji:       patchString(cmd, "emoji"),
			Color:       patchString(cmd, "color"),
		}
		if !params.Title.Specified() && !params.Description.Specified() &&
			!params.Emoji.Specified() && !params.Color.Specified() {
			return fmt.Errorf("specify at least one field to change")
		}
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		log, err := client.EditLog(cmd.Context(), args[0], args[1], args[2], params)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(log.Record())
		}
		fmt.Printf("Updated log: %s\n", log.ID())
		return nil
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete <namespace> <feed> <id>",
	Short: "Delete a log",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.DeleteLog(cmd.Context(), args[0], args[1], args[2]); err != nil {
			return err
		}
		if !flagJSON {
			fmt.Printf("Deleted log: %s\n", args[2])
		}
		return nil
	},
}

func init() {
	logCreateCmd.Flags().StringVar(&logCreateTitle, "title", "", "log title (required)")
	logCreateCmd.Flags().String("description", "", "log description")
	logCreateCmd.Flags().String("emoji", "", "log emoji")
	logCreateCmd.Flags().String("color", "", "log color")
	_ = logCreateCmd.MarkFlagRequired("title")

	logListCmd.Flags().Int("limit", 0, "maximum number of logs to return")
	logListCmd.Flags().Int("offset", 0, "number of logs to skip")

	logEditCmd.Flags().String("title", "", "new title")
	logEditCmd.Flags().String("description", "", "new description")
	logEditCmd.Flags().Bool("clear-description", false, "remove the description")
	logEditCmd.Flags().String("emoji", "", "new emoji")
	logEditCmd.Flags().Bool("clear-emoji", false, "remove the emoji")
	logEditCmd.Flags().String("color", "", "new color")
	logEditCmd.Flags().Bool("clear-color", false, "remove the color")
	logEditCmd.MarkFlagsMutuallyExclusive("description", "clear-description")
	logEditCmd.MarkFlagsMutuallyExclusive("emoji", "clear-emoji")
	logEditCmd.MarkFlagsMutuallyExclusive("color", "clear-color")

	logCmd.AddCommand(logCreateCmd)
	logCmd.AddCommand(logGetCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logEditCmd)
	logCmd.AddCommand(logDeleteCmd)
}
