package config

import (
	"os"

	"github.com/dmitrijs2005/farmkeeper/internal/common"
	"github.com/dmitrijs2005/farmkeeper/internal/models"
)

// SeedAdminID is the id of the account the directory is seeded with.
const SeedAdminID = "1"

// Config holds runtime settings for the FarmKeeper client.
//
// Fields:
//   - DirectoryDSN: "" for the map-backed directory, or an in-memory SQLite DSN.
//   - SeedAdmin*: the admin account present at start-up.
//   - ResetTicketSize: random bytes behind a password reset ticket.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DirectoryDSN      string
	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
	SeedAdminProfile  models.Profile
	ResetTicketSize   int
	LogLevel          string
}

// LoadDefaults populates c with the demo account of the dashboard.
// NOTE: the seed credentials are public; they exist for demonstration only.
func (c *Config) LoadDefaults() {
	c.DirectoryDSN = ""
	c.SeedAdminEmail = "demo@farm.com"
	c.SeedAdminPassword = "password"
	c.SeedAdminName = "Demo User"
	c.SeedAdminProfile = models.Profile{
		Phone:          "+1234567890",
		Address:        "123 Farm Street",
		FarmSize:       "500 acres",
		PreferredCrops: []string{"Wheat", "Corn", "Soybeans"},
		Certifications: []string{"Organic Farming", "Sustainable Agriculture"},
	}
	c.ResetTicketSize = common.DefaultResetTicketSize
	c.LogLevel = "info"
}

// SeedAdmin builds the admin account the directory starts with.
func (c *Config) SeedAdmin() *models.Account {
	return &models.Account{
		ID:       SeedAdminID,
		Email:    c.SeedAdminEmail,
		Password: c.SeedAdminPassword,
		Name:     c.SeedAdminName,
		Role:     models.RoleAdmin,
		Profile:  c.SeedAdminProfile.Clone(),
	}
}

// LoadConfig builds a Config from defaults, then the optional config file,
// then command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load is LoadConfig over an explicit argument list.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
