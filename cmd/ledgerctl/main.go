package main

import (
	"context"
	"log"
	"os"
	_ "time/tzdata"

	"github.com/dmitrijs2005/spakiosk/internal/ledgerctl"
	"github.com/dmitrijs2005/spakiosk/internal/server/config"
)

func main() {

	ctx := context.Background()

	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}

	cfg, err := config.LoadConfig(args)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := ledgerctl.NewApp(cfg, os.Stdout).Run(ctx, args); err != nil {
		log.Fatalf("%v", err)
	}

}
