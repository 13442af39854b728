package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/farmkeeper/internal/authority"
	"github.com/dmitrijs2005/farmkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/farmkeeper/internal/cli"
	"github.com/dmitrijs2005/farmkeeper/internal/config"
	"github.com/dmitrijs2005/farmkeeper/internal/directory"
	"github.com/dmitrijs2005/farmkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	dir, closeDir, err := directory.Open(ctx, cfg.DirectoryDSN)
	if err != nil {
		log.Fatalf("error opening directory: %v", err)
	}
	defer closeDir()

	if err := directory.Seed(ctx, dir, cfg.SeedAdmin()); err != nil {
		log.Fatalf("error seeding directory: %v", err)
	}

	auth := authority.New(dir, logger, authority.WithTicketSize(cfg.ResetTicketSize))
	app := cli.NewApp(auth, logger, os.Stdin, os.Stdout)

	app.Run(ctx)

}
