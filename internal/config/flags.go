package config

import (
	"flag"
	"fmt"

	"github.com/dmitrijs2005/farmkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in the package documentation are considered; anything else in args
// is ignored. It panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-e", "-p", "-n", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DirectoryDSN, "d", cfg.DirectoryDSN, "directory DSN (empty for the in-memory map)")
	fs.StringVar(&cfg.SeedAdminEmail, "e", cfg.SeedAdminEmail, "seed admin email")
	fs.StringVar(&cfg.SeedAdminPassword, "p", cfg.SeedAdminPassword, "seed admin password")
	fs.StringVar(&cfg.SeedAdminName, "n", cfg.SeedAdminName, "seed admin name")
	fs.IntVar(&cfg.ResetTicketSize, "t", cfg.ResetTicketSize, "reset ticket size (random bytes)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if cfg.ResetTicketSize <= 0 {
		panic(fmt.Sprintf("reset ticket size must be positive, got %d", cfg.ResetTicketSize))
	}
}
