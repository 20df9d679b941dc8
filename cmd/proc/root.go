package proc

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ties/voltdb-client-go/cmd/util"
	"github.com/ties/voltdb-client-go/voltdb/session"
	"github.com/ties/voltdb-client-go/voltdb/wire"
)

var (
	sess *session.Session

	// ProcCommands represents the stored procedure command group
	ProcCommands = &cobra.Command{
		Use:               "proc",
		Short:             "Work with stored procedures",
		PersistentPreRunE: setupClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common connection flags to the proc command
	util.SetupClientFlags(ProcCommands)

	// Add subcommands
	ProcCommands.AddCommand(listCmd)
	ProcCommands.AddCommand(callCmd)
	ProcCommands.AddCommand(uploadCmd)
	ProcCommands.AddCommand(pingCmd)
}

// setupClient opens the session used by the proc commands
func setupClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	sess, err = util.Connect()
	return err
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all stored procedures on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer sess.Shutdown()

			ch, err := sess.ListProcedures()
			if err != nil {
				return err
			}

			table, err := session.BlockForResult(ch)
			if err != nil {
				return err
			}

			fmt.Print(table.String())
			return nil
		},
	}
	callCmd = &cobra.Command{
		Use:   "call [procedure] [params...]",
		Short: "Invoke a stored procedure with string parameters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer sess.Shutdown()

			params := make([]wire.Value, 0, len(args)-1)
			for _, arg := range args[1:] {
				params = append(params, wire.String(arg))
			}

			ch, err := sess.Call(args[0], params...)
			if err != nil {
				return err
			}

			table, err := session.BlockForResult(ch)
			if err != nil {
				return err
			}

			fmt.Print(table.String())
			return nil
		},
	}
	uploadCmd = &cobra.Command{
		Use:   "upload [jar]",
		Short: "Upload a procedure jar to the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer sess.Shutdown()

			jar, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			ch, err := sess.UploadJar(jar)
			if err != nil {
				return err
			}

			if _, err := session.BlockForResult(ch); err != nil {
				return err
			}
			fmt.Println("uploaded successfully")
			return nil
		},
	}
	pingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Send a liveness probe to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer sess.Shutdown()

			if err := sess.Ping(); err != nil {
				return err
			}
			fmt.Println("ping sent")
			return nil
		},
	}
)
