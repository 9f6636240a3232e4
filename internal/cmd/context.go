package cmd

import (
	"io"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/services"
)

// Context передается в Run каждой команды.
type Context struct {
	Out      io.Writer
	Err      io.Writer
	Services *services.ServiceContainer
	Config   *config.Config
	Verbose  bool
}
