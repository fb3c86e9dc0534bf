package cmd

import (
	"fmt"
	"io"
	"strings"

	"devserve/core/server"

	"github.com/fatih/color"
)

func printBanner(w io.Writer, cfg server.Config, servedFrom string) {
	label := color.New(color.FgCyan).SprintFunc()

	color.New(color.FgGreen, color.Bold).Fprintln(w, "Your site is running!")
	fmt.Fprintf(w, "%s %s\n", label("Local URL:   "), cfg.LocalURL())
	fmt.Fprintf(w, "%s %s\n", label("Network URL: "), cfg.NetworkURL())
	fmt.Fprintf(w, "%s %s\n", label("Serving from:"), servedFrom)
	fmt.Fprintln(w, "Press Ctrl+C to stop the server")
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

func printBrowserStatus(w io.Writer, url string, opened bool) {
	if opened {
		fmt.Fprintln(w, "Opening website in your default browser...")
		return
	}
	fmt.Fprintf(w, "Please open %s in your browser\n", url)
}

func printStopped(w io.Writer) {
	color.New(color.FgYellow).Fprintln(w, "\nServer stopped by user")
}
