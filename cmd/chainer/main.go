// Command chainer personalizes planted secrets from the player's email and
// records the outcome in the marker file. It is meant to run once.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"midnightcafe/internal/chain"
	"midnightcafe/internal/config"
	"midnightcafe/internal/files"
	"midnightcafe/internal/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadChainer()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := utils.Discard()
	if cfg.Debug {
		logger, err = utils.NewLogger(cfg.LogFile)
		if err != nil {
			log.Printf("open log: %v", err)
			return 1
		}
		logger.Infof("--- Script run at %s ---", time.Now().Format(time.RFC3339))
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainer := chain.New(files.NewEmailStore(cfg.EmailFile), chain.Chpasswd{}, logger)
	report, runErr := chainer.Run(ctx, chain.PGPMapping{
		Path:        cfg.MappingFile,
		KeyringPath: cfg.KeyringFile,
		Passphrase:  cfg.Passphrase,
	})
	logger.Infof("applied %d steps, skipped %d, status %s", report.Applied, report.Skipped, report.Status)

	if err := files.SecureRemove(cfg.MappingFile); err != nil {
		log.Printf("Error during secure removal of %s: %v", cfg.MappingFile, err)
	}
	if cfg.SelfDestruct {
		if exe, err := os.Executable(); err != nil {
			log.Printf("locate executable: %v", err)
		} else if err := files.SecureRemove(exe); err != nil {
			log.Printf("Error during secure removal of %s: %v", exe, err)
		}
	}

	if runErr != nil {
		return 1
	}
	return 0
}
