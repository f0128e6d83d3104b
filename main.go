package main

import (
	"github.com/mrlokans/auth-service/internal/config"
	"github.com/mrlokans/auth-service/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
