package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ties/voltdb-client-go/cmd/proc"
	"github.com/ties/voltdb-client-go/cmd/query"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "volt",
		Short: "client for VoltDB-compatible servers",
		Long: fmt.Sprintf(`volt (v%s)

A client driver and command line tool for VoltDB-compatible database
servers, speaking the native binary wire protocol.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of volt",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("volt v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(query.QueryCmd)
	RootCmd.AddCommand(proc.ProcCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
