// sailormouth profiles how often a reddit user's recent comments use a list of
// target words and charts the hits per subreddit.
package main

import (
	"fmt"
	"os"

	"sailormouth/cmd/sailormouth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
