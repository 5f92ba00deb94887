// Shared helpers for lawg CLI commands.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lawgdev/lawg-go/pkg/types"
)

var label = color.New(color.Bold).SprintFunc()

// patchString builds the tri-state patch value for one field: --<name>
// sets it, --clear-<name> nulls it, neither leaves the field untouched.
// The two flags are registered as mutually exclusive.
func patchString(cmd *cobra.Command, name string) types.Optional[string] {
	if cmd.Flags().Changed("clear-" + name) {
		return types.Null[string]()
	}
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return types.Some(v)
	}
	return types.Optional[string]{}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printField writes one aligned "Name:  value" line with a bold label.
// The name is padded before coloring so escape codes do not skew the
// alignment.
func printField(name string, value any) {
	fmt.Printf("%s %v\n", label(fmt.Sprintf("%-12s", name+":")), value)
}

// strOrDash renders optional record fields.
func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// newTable returns a writer configured the same way for every list
// command.
func newTable(headers []string) *tablewriter.Table {
	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader(headers)
	w.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	w.SetCenterSeparator("|")
	w.SetAutoWrapText(false)
	return w
}

func printProject(rec types.Project) {
	printField("ID", rec.ID)
	printField("Namespace", rec.Namespace)
	printField("Name", rec.Name)
	printField("Flags", rec.Flags)
	printField("Icon", strOrDash(rec.Icon))

	if len(rec.Feeds) > 0 {
		fmt.Println()
		w := newTable([]string{"FEED", "DESCRIPTION", "EMOJI"})
		for _, f := range rec.Feeds {
			w.Append([]string{f.Name, strOrDash(f.Description), strOrDash(f.Emoji)})
		}
		w.Render()
	}

	if len(rec.Members) > 0 {
		fmt.Println()
		w := newTable([]string{"MEMBER", "ID"})
		for _, m := range rec.Members {
			w.Append([]string{m.Username, m.ID})
		}
		w.Render()
	}
}

func printFeed(rec types.Feed) {
	printField("ID", rec.ID)
	printField("Project", rec.ProjectID)
	printField("Name", rec.Name)
	printField("Description", strOrDash(rec.Description))
	printField("Emoji", strOrDash(rec.Emoji))
}

func printLog(rec types.Log) {
	printField("ID", rec.ID)
	printField("Feed", rec.FeedID)
	printField("Title", rec.Title)
	printField("Description", strOrDash(rec.Description))
	printField("Emoji", strOrDash(rec.Emoji))
	printField("Color", strOrDash(rec.Color))
}

func printInsight(rec types.Insight) {
	printField("ID", rec.ID)
	printField("Title", rec.Title)
	printField("Value", strconv.FormatFloat(rec.Value, 'f', -1, 64))
	printField("Description", strOrDash(rec.Description))
	printField("Emoji", strOrDash(rec.Emoji))
}
