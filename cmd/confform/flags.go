package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlag lets an explicitly set flag override file and env values.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
