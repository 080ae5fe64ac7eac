package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config is the optional TOML configuration:
//
//	format = "cmake"
//
//	[targets."armv7-unknown-linux-gnueabihf"]
//	sysroot = "/opt/sysroots/armv7"
//	ar = "/opt/cross/bin/arm-linux-gnueabihf-ar"
type config struct {
	Format  string                    `toml:"format"`
	Targets map[string]targetOverride `toml:"targets"`
}

type targetOverride struct {
	Sysroot string `toml:"sysroot"`
	CC      string `toml:"cc"`
	CXX     string `toml:"cxx"`
	AR      string `toml:"ar"`
	Ranlib  string `toml:"ranlib"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
