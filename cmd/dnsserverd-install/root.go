package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/newdaynewburner/dnsserverd-installer/internal/install"
	"github.com/newdaynewburner/dnsserverd-installer/internal/messages"
	"github.com/newdaynewburner/dnsserverd-installer/internal/systemd"
	"github.com/newdaynewburner/dnsserverd-installer/internal/terminal"
)

var installRun = install.Run
var getwd = os.Getwd

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			opts := install.Options{
				Layout:  install.DefaultLayout(),
				Bundle:  install.BundleAt(cwd),
				System:  install.RealSystem{},
				Manager: systemd.CtlManager{Stderr: cmd.ErrOrStderr()},
				Out:     cmd.OutOrStdout(),
			}
			if err := installRun(opts); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), messages.InstallDone)
			return nil
		},
	}
}

// printSuccess prints the final confirmation line, colored only when stdout
// is an interactive terminal.
func printSuccess(out io.Writer, msg string) {
	if terminal.StdoutIsTerminal() {
		_, _ = color.New(color.FgGreen).Fprintln(out, msg)
		return
	}
	_, _ = fmt.Fprintln(out, msg)
}
