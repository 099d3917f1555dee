package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SetDefaults applies the built-in defaults to a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", defaultDatabasePath())
	v.SetDefault("language", "english")
	v.SetDefault("log.json", false)
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mwn.db"
	}
	return filepath.Join(home, ".mwn", "mwn.db")
}
