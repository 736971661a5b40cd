package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dmitrijs2005/casekeeper/internal/deploy"
	"github.com/dmitrijs2005/casekeeper/internal/logging"
)

// newCLIApp creates the CLI application with all commands. Output goes to out.
func newCLIApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:      "deployconfig",
		Usage:     "Inspect the contract deployment configuration",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: "deploy.yaml", Usage: "Deployment config file"},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: "Log level: debug|info|warn|error"},
		},
		Commands: []*cli.Command{
			validateCmd(),
			showCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// load reads and validates the file named by --file.
func load(c *cli.Context) (*deploy.Config, error) {
	logger, err := logging.New(c.String("log-level"), c.App.ErrWriter)
	if err != nil {
		return nil, err
	}

	path := c.String("file")
	cfg, err := deploy.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn(c.Context, "invalid deploy config", "path", path, "error", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug(c.Context, "deploy config valid", "path", path, "network", cfg.DefaultNetwork)
	return cfg, nil
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check the configuration and the deployer key",
		Action: func(c *cli.Context) error {
			cfg, err := load(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "ok: solc %s, default network %s\n", cfg.Version, cfg.DefaultNetwork)
			return nil
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the effective configuration with keys masked",
		Action: func(c *cli.Context) error {
			cfg, err := load(c)
			if err != nil {
				return err
			}
			red := cfg.Redacted()
			data, err := red.Marshal()
			if err != nil {
				return err
			}
			_, err = c.App.Writer.Write(data)
			return err
		},
	}
}
