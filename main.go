package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/larynjahor/fstack/internal/config"
	"github.com/larynjahor/fstack/internal/replay"
	"github.com/larynjahor/fstack/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("FSTACK_CONFIG"))
	if err != nil {
		log.Fatalln(err)
	}

	c := logging.Auto(cfg.Debug, cfg.LogFile)
	defer c.Close()

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config.Config) error {
	var script replay.Script

	slog.Info("started fstack")
	defer slog.Info("exited fstack")

	if err := json.NewDecoder(os.Stdin).Decode(&script); err != nil {
		return err
	}

	resp, err := replay.Run(script, cfg.Capacity)
	if err != nil {
		slog.Error("failed to replay script", slog.Any("err", err), slog.Int("capacity", script.Capacity))
		return err
	}

	return writeResponse(resp)
}

func writeResponse(resp *replay.Response) error {
	if err := json.NewEncoder(os.Stdout).Encode(resp); err != nil {
		return err
	}

	return nil
}
