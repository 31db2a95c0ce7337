package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DBConfig selects the storage backend: a non-empty Mongo URI picks the
// document store, an empty one picks the seeded in-memory store.
type DBConfig struct {
	MongoURI string `mapstructure:"mongo_uri"`
	Database string `mapstructure:"database"`
}

func (config DBConfig) UseMongo() bool {
	return config.MongoURI != ""
}

func (config DBConfig) validate() error {
	if config.MongoURI != "" && config.Database == "" {
		return fmt.Errorf("missing variable: db database name")
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("db.mongo_uri", "MONGODB_URI"); err != nil {
		return err
	}

	return viper.BindEnv("db.database", "MONGODB_DBNAME")
}
