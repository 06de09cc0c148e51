// @title Animals of Africa
// @version 1.0
// @description Server-rendered CRUD over African animal species.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"african-animals/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
