package config

import (
	"os"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/docrules/pkg/errors"
)

// WriteDefault writes the default configuration to a TOML file. It refuses
// to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path)
	}

	data, err := gotoml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "marshal default config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "write config file %s", path)
	}

	return nil
}
