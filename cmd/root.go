package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"devserve/core/server"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Running it without arguments serves the site.
var RootCmd = &cobra.Command{
	Use:   "devserve",
	Short: "Local static site server",
	Long: `devserve serves a pre-built website from a local directory (or an S3/MinIO bucket)
with permissive CORS headers, and opens it in your browser.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServeCmd,
}

// Execute runs the root command and exits the process. It is the only place
// where errors become messages and exit statuses.
func Execute() {
	os.Exit(execute(RootCmd, os.Stderr))
}

func execute(root *cobra.Command, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			code = reportFailure(stderr, root.Name(), &server.StartupError{
				Kind: server.FailureUnexpected,
				Err:  fmt.Errorf("%v", r),
			})
		}
	}()

	if err := root.ExecuteContext(context.Background()); err != nil {
		return reportFailure(stderr, root.Name(), err)
	}
	return 0
}

// reportFailure prints the message for err and returns the exit status.
func reportFailure(w io.Writer, command string, err error) int {
	se := server.Classify(err)
	zap.L().Debug("Startup failed", zap.Stringer("kind", se.Kind), zap.Error(se.Err))

	lines := failureMessage(command, se)
	color.New(color.FgRed, color.Bold).Fprintln(w, lines[0])
	for _, hint := range lines[1:] {
		color.New(color.FgYellow).Fprintln(w, hint)
	}
	return 1
}

func failureMessage(command string, se *server.StartupError) []string {
	switch se.Kind {
	case server.FailureAddrInUse:
		next := se.Port + 1
		if se.Port <= 0 || se.Port >= 65535 {
			next = 8001
		}
		return []string{
			fmt.Sprintf("Port %d is already in use. Please stop other servers or use a different port.", se.Port),
			fmt.Sprintf("Try: %s --port %d", command, next),
		}
	case server.FailureStartup:
		return []string{fmt.Sprintf("Error starting server: %v", se.Err)}
	case server.FailureServe:
		return []string{fmt.Sprintf("Server stopped with an error: %v", se.Err)}
	default:
		return []string{fmt.Sprintf("Unexpected error: %v", se.Err)}
	}
}

func init() {
	serveFlags.register(RootCmd.Flags())
}
