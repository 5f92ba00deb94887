// Project commands for the lawg CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawgdev/lawg-go/pkg/types"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectCreateName string

var projectCreateCmd = &cobra.Command{
	Use:   "create <namespace>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		project, err := client.CreateProject(cmd.Context(), types.CreateProjectParams{
			Name:      projectCreateName,
			Namespace: args[0],
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(project.Record())
		}
		fmt.Printf("Created project: %s\n", project.Namespace())
		return nil
	},
}

var projectGetCmd = &cobra.Command{
	Use:   "get <namespace>",
	Short: "Display a project with its feeds and members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		project, err := client.FetchProject(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(project.Record())
		}
		printProject(project.Record())
		return nil
	},
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <namespace>",
	Short: "Rename a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("name") {
			return fmt.Errorf("specify at least one field to change")
		}
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		project, err := client.EditProject(cmd.Context(), args[0], types.EditProjectParams{
			Name: patchString(cmd, "name"),
		})
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(project.Record())
		}
		fmt.Printf("Updated project: %s\n", project.Namespace())
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <namespace>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := client.DeleteProject(cmd.Context(), args[0]); err != nil {
			return err
		}
		if !flagJSON {
			fmt.Printf("Deleted project: %s\n", args[0])
		}
		return nil
	},
}

func init() {
	projectCreateCmd.Flags().StringVar(&projectCreateName, "name", "", "display name (required)")
	_ = projectCreateCmd.MarkFlagRequired("name")

	projectEditCmd.Flags().String("name", "", "new display name")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectGetCmd)
	projectCmd.AddCommand(projectEditCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
