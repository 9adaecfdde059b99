package main

import (
	"path/filepath"

	"nlsql/helpers"
	l "nlsql/internal/logger"
	"nlsql/internal/repl"
	"nlsql/internal/server"
)

func main() {
	logDir := filepath.Join("logs")

	replLogger := l.New("repl", logDir, l.ERROR)
	l.New("server", logDir, l.ERROR)

	go server.StartServer()
	helpers.WaitForServer()

	replLogger.Info("Starting nlsql server")
	repl.Repl()
	replLogger.Info("Shutting down nlsql server")
}
