package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	loadEnv()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error("formfield failed", "err", err)
		os.Exit(1)
	}
}
