package main

import (
	"context"
	"os"

	"github.com/lixenwraith/daycycle/core"
)

func main() {
	// Panic recovery for the main goroutine; loop goroutines recover through core.Go
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
