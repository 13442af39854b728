package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/farmkeeper/internal/flagx"
)

// FileConfig is the on-disk shape of the configuration. Pointer fields tell
// "absent" apart from "set to the zero value".
type FileConfig struct {
	DirectoryDSN    *string          `json:"directory_dsn" yaml:"directory_dsn"`
	ResetTicketSize *int             `json:"reset_ticket_size" yaml:"reset_ticket_size"`
	LogLevel        *string          `json:"log_level" yaml:"log_level"`
	SeedAdmin       *SeedAdminConfig `json:"seed_admin" yaml:"seed_admin"`
}

type SeedAdminConfig struct {
	Email          *string  `json:"email" yaml:"email"`
	Password       *string  `json:"password" yaml:"password"`
	Name           *string  `json:"name" yaml:"name"`
	Phone          *string  `json:"phone" yaml:"phone"`
	Address        *string  `json:"address" yaml:"address"`
	FarmSize       *string  `json:"farm_size" yaml:"farm_size"`
	PreferredCrops []string `json:"preferred_crops" yaml:"preferred_crops"`
	Certifications []string `json:"certifications" yaml:"certifications"`
}

// parseFile overlays cfg with the config file named by -c/-config in args.
// It panics if the file cannot be read or decoded.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if err := decodeFile(path, data, &fc); err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func decodeFile(path string, data []byte, fc *FileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, fc)
	default:
		return json.Unmarshal(data, fc)
	}
}

func (fc *FileConfig) apply(cfg *Config) {
	setIf(&cfg.DirectoryDSN, fc.DirectoryDSN)
	setIf(&cfg.ResetTicketSize, fc.ResetTicketSize)
	setIf(&cfg.LogLevel, fc.LogLevel)

	sa := fc.SeedAdmin
	if sa == nil {
		return
	}
	setIf(&cfg.SeedAdminEmail, sa.Email)
	setIf(&cfg.SeedAdminPassword, sa.Password)
	setIf(&cfg.SeedAdminName, sa.Name)
	setIf(&cfg.SeedAdminProfile.Phone, sa.Phone)
	setIf(&cfg.SeedAdminProfile.Address, sa.Address)
	setIf(&cfg.SeedAdminProfile.FarmSize, sa.FarmSize)
	if sa.PreferredCrops != nil {
		cfg.SeedAdminProfile.PreferredCrops = sa.PreferredCrops
	}
	if sa.Certifications != nil {
		cfg.SeedAdminProfile.Certifications = sa.Certifications
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
