package main

import (
	"encoding/json"
	"os"

	"github.com/model-collapse/pick-io/pick"
)

type Config struct {
	DataDir     string `json:"data_dir"`
	Listen      string `json:"listen"`
	Encoding    string `json:"encoding"`
	JPEGQuality int    `json:"jpeg_quality"`
}

var GConf = Config{
	DataDir:  ".",
	Listen:   "0.0.0.0:8093",
	Encoding: pick.DefaultEncoding,
}

func LoadConfig(path string) (err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = json.Unmarshal(data, &GConf)
	return
}

// Options returns the read/write settings of the configured folder.
func (c Config) Options() pick.Options {
	opts := pick.DefaultOptions()
	if c.Encoding != "" {
		opts.Encoding = c.Encoding
	}
	if c.JPEGQuality > 0 {
		opts.JPEGQuality = c.JPEGQuality
	}
	return opts
}
