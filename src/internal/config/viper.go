package config

import "github.com/spf13/viper"

func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	// A missing config file is fine; defaults from main cover everything.
	_ = v.ReadInConfig()

	return v
}
