package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the TOML config file.
//
//	items = ["alpha", "beta"]
//	items_file = "/tmp/items"
//	watch = "2s"
//	delimiter = "\t"
//	width = 0
//	height = 0
//
//	[logging]
//	file = "/tmp/popup-pick.log"
//	trace = false
//
//	[keys]
//	open_help = ["?", "f1"]
type fileConfig struct {
	Items     []string            `toml:"items"`
	ItemsFile string              `toml:"items_file"`
	Watch     duration            `toml:"watch"`
	Delimiter string              `toml:"delimiter"`
	Width     int                 `toml:"width"`
	Height    int                 `toml:"height"`
	Logging   fileLogging         `toml:"logging"`
	Keys      map[string][]string `toml:"keys"`
}

type fileLogging struct {
	File  string `toml:"file"`
	Trace bool   `toml:"trace"`
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
