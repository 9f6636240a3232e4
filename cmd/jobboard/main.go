package main

import (
	"fmt"
	"os"

	"jobboard_backend/internal/cmd"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/seed"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"

	"github.com/alecthomas/kong"
)

func main() {
	cli := cmd.NewCLI()

	parser, err := kong.New(cli,
		kong.Name("jobboard"),
		kong.Description("Job marketplace: seekers apply, employers post, admins watch."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	env := cfg.Server.Env
	if cli.Verbose {
		env = "development"
	}
	logger.Init(env)

	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	appRepo := repositories.NewApplicationRepository()

	if cfg.Seed.Enabled {
		if _, err := seed.Load(userRepo, jobRepo, appRepo); err != nil {
			logger.Fatal("failed to load seed data", "error", err)
		}
	}

	container := services.NewServiceContainer(cfg, userRepo, jobRepo, appRepo,
		storage.NewLocalSessionStorage(cfg.Session.SnapshotPath))

	runCtx := &cmd.Context{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Services: container,
		Config:   cfg,
		Verbose:  cli.Verbose,
	}

	if err := kctx.Run(runCtx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
