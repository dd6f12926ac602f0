// pluginlint - Plugin Package Validation
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/pluginlint

package main

import (
	"os"

	"github.com/ariel-frischer/pluginlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
