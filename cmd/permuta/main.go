package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logindomarcio/permuta-magis-v3/internal/app"
	"github.com/logindomarcio/permuta-magis-v3/internal/cli"
)

func main() {
	session := cli.NewSession()

	rootCmd := &cobra.Command{
		Use:     "permuta",
		Short:   "Find relocation exchange cycles between judges",
		Version: app.BuildVersion(),
		Long: `permuta reads a list of participants (name, current court, up to three
desired courts) and finds the groups who can all relocate at once: direct
swaps, triangles and four-way cycles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	session.Bind(rootCmd)

	rootCmd.AddCommand(cli.ParticipantsCmd(session))
	rootCmd.AddCommand(cli.CyclesCmd(session))
	rootCmd.AddCommand(cli.SearchCmd(session))
	rootCmd.AddCommand(cli.MapCmd(session))
	rootCmd.AddCommand(cli.WatchCmd(session))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
