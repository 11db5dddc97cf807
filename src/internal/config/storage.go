package config

import (
	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/log"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func NewStore(v *viper.Viper, logger log.Log) *repository.Store {
	dir := v.GetString("storage.dir")
	if dir == "" {
		dir = "data"
	}

	store, err := repository.NewStore(afero.NewOsFs(), dir)
	if err != nil {
		logger.Error("storage init", err.Error(), "config", dir)
		return nil
	}
	return store
}
