package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/corentings/checkers/internal/config"
	"github.com/corentings/checkers/internal/replay"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pdnreplay: ")

	cfg, err := replay.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.Printf("replaying %d file(s) under %s rules", len(cfg.Files), cfg.Rules())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := replay.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
