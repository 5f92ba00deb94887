// Version command for the lawg CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawgdev/lawg-go/pkg/lawg"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lawg version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lawg", lawg.Version)
	},
}
