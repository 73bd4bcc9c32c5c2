// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"os"

	"github.com/lowstock/lowstock/cliparse"
	"github.com/lowstock/lowstock/menu"
	"github.com/lowstock/lowstock/models"
	"github.com/lowstock/lowstock/service"
	"github.com/lowstock/lowstock/storage"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the durable store
	var store storage.Store
	switch cfg.StoreType {
	case cliparse.StoreSQLite:
		s, err := storage.OpenSQLite(cfg.DataFile)
		if err != nil {
			slog.Error("sqlite store open failed", "path", cfg.DataFile, "error", err)
			os.Exit(1)
		}
		defer s.Close()
		store = s
	default:
		store = storage.OpenFile(cfg.DataFile)
	}
	slog.Info("store ready", "type", cfg.StoreType, "path", cfg.DataFile)

	svc := service.New(store)
	user := models.User{Name: cfg.UserName, Admin: cfg.Admin}

	// Run the interactive session; every operation flushes before
	// returning, so there is nothing to clean up on exit.
	menu.New(svc, user, os.Stdin, os.Stdout).Run()
}
