package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/portal"
)

// options returns the default manager options from the options file.
// An explicit --config path must exist; the default path is optional.
func (c *CLI) options() (portal.Options, error) {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return portal.Options{}, nil
		}
		path = filepath.Join(dir, optionsFile)
	}

	opts, err := loadOptions(path)
	if err != nil {
		if !explicit && errors.Is(err, errors.ErrCodeFileNotFound) {
			return portal.Options{}, nil
		}
		return nil, err
	}
	c.Logger.Debug("loaded options", "path", path, "keys", opts.Keys())
	return opts, nil
}

// loadOptions decodes a TOML options file. Top-level keys become option
// names; a filename key is rejected since each command sets its own.
func loadOptions(path string) (portal.Options, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "cannot find file %q", path)
	}

	opts := portal.Options{}
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode options %s", path)
	}
	if _, ok := opts[portal.OptionFilename]; ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "options file %s must not set %q", path, portal.OptionFilename)
	}
	return opts, nil
}
