package config

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/casekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -a, -d, -l and -p are looked at; everything else in args is ignored.
// It panics on malformed values, like the JSON loader.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the case API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local credential store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "case list page size")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}

	cfg.APIBaseURL = normalizeBaseURL(cfg.APIBaseURL)
}

// normalizeBaseURL makes relative endpoint paths resolve under the base.
func normalizeBaseURL(u string) string {
	if u == "" || strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}
