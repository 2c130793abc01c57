package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kosmosec/assetguard/cmd/cli/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd := cmd.NewRoot()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
