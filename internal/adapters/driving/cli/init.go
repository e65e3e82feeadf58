package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/coursesched/internal/adapters/driven/config/file"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with the default settings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := file.DefaultPath
		if len(args) == 1 {
			path = args[0]
		}
		if err := file.WriteDefault(path); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
