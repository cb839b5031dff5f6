package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/carswipe/internal/client/cli"
	"github.com/dmitrijs2005/carswipe/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := cli.NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
