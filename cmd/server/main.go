package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/kalarp/employee-management-system/internal/app/server"
)

func main() {
	// A missing .env is fine; real deployments set the environment.
	_ = godotenv.Load()

	if err := server.Run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}
