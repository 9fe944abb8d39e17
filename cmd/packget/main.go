package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/catalog"
)

func main() {
	var (
		src = flag.String("src", "", "template pack source, e.g. git::https://example.com/packs.git//houses")
		out = flag.String("o", "./pack", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *src == "" || *out == "" {
		log.Error("source and output dir required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("downloading template pack", "source", *src, "dir", *out)
	c, err := catalog.FetchAndLoad(ctx, *src, *out)
	if err != nil {
		log.Error("fetch template pack", "error", err)
		os.Exit(1)
	}
	log.Info("done downloading template pack", "dir", *out, "structures", c.Len())
	for _, name := range c.Names() {
		color.Cyan("%s", name)
	}
}
