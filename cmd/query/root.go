package query

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ties/voltdb-client-go/cmd/util"
	"github.com/ties/voltdb-client-go/voltdb/session"
)

var (
	sess *session.Session

	// QueryCmd represents the query command group
	QueryCmd = &cobra.Command{
		Use:               "query [sql]",
		Short:             "Run an ad-hoc SQL statement",
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setupClient,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("no SQL statement given")
			}
			defer sess.Shutdown()

			ch, err := sess.Query(args[0])
			if err != nil {
				return err
			}

			table, err := session.BlockForResult(ch)
			if err != nil {
				return err
			}

			fmt.Print(table.String())
			fmt.Printf("(%d rows)\n", table.RowCount())
			return nil
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common connection flags to the query command
	util.SetupClientFlags(QueryCmd)

	// Add subcommands
	QueryCmd.AddCommand(perfTestCmd)
}

// setupClient opens the session used by the query commands
func setupClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	sess, err = util.Connect()
	return err
}
