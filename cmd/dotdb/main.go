package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"dotdb/internal/cli"
)

func main() {
	// Pick up DOTDB_* overrides from a .env file when one exists.
	_ = godotenv.Load()

	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
