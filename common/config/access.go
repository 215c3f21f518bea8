package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the yaml config at path over top of the defaults. An empty
// path returns the defaults untouched.
func Load(path string) (*MainConfig, error) {
	c := NewDefaultMainConfig()
	if path == "" {
		return &c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer f.Close()

	if err = yaml.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
