package dataset

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/portal"
)

// Formats lists the description formats [Decode] accepts.
var Formats = []string{"toml", "yaml", "yml", "json"}

// Load reads the description at path, choosing the decoder by extension.
func Load(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "cannot find file %q", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return Decode(bytes.NewReader(b), portal.FormatOf(path))
}

// Decode reads a description in the given format from r and builds it.
func Decode(r io.Reader, format string) (*Dataset, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read dataset")
	}

	var f File
	switch format {
	case "toml":
		md, err := toml.Decode(string(b), &f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "unknown toml key %q", undecoded[0].String())
		}
	case "yaml", "yml":
		if err := yaml.UnmarshalStrict(b, &f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode yaml")
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		dec.UseNumber()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported dataset format %q", format)
	}
	return f.Build()
}
