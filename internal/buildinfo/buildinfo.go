// Package buildinfo prints the startup banner and the values injected at
// link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/certkeeper/internal/buildinfo.buildVersion=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
)

const appName = "certkeeper"

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the banner followed by version, date and commit.
func PrintBuildData(w io.Writer) {
	banner := figure.NewFigure(appName, "small", true)
	fmt.Fprintln(w, banner.String())
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
