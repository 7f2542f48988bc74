package dataset

import (
	"encoding/json"

	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/portal"
)

// File is the decoded form of a dataset description.
type File struct {
	Model ModelSpec `toml:"model" yaml:"model" json:"model"`
	Data  []Entry   `toml:"data" yaml:"data" json:"data"`
}

// ModelSpec lists the model's components in declaration order.
type ModelSpec struct {
	Sets   []string `toml:"sets" yaml:"sets" json:"sets"`
	Params []string `toml:"params" yaml:"params" json:"params"`
}

// Entry holds the members of one set index.
type Entry struct {
	Namespace string `toml:"namespace" yaml:"namespace" json:"namespace,omitempty"`
	Set       string `toml:"set" yaml:"set" json:"set"`
	Index     any    `toml:"index" yaml:"index" json:"index,omitempty"` // Scalar key, or an array for a tuple key
	Members   []any  `toml:"members" yaml:"members" json:"members"`
}

// Dataset is a model together with the data to write for it.
type Dataset struct {
	Model *portal.StaticModel
	Data  *portal.Data
}

// Build validates f and groups its entries by namespace and set, keeping
// the order in which they appear. Repeated entries for the same set index
// replace earlier ones in place.
func (f *File) Build() (*Dataset, error) {
	for _, name := range f.Model.Sets {
		if err := errors.ValidateName("set", name); err != nil {
			return nil, err
		}
	}
	for _, name := range f.Model.Params {
		if err := errors.ValidateName("param", name); err != nil {
			return nil, err
		}
	}

	data := portal.NewData()
	for i, e := range f.Data {
		if err := errors.ValidateName("set", e.Set); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "data entry %d", i)
		}
		ns := portal.Namespace(e.Namespace)
		if ns != portal.Global {
			if err := errors.ValidateName("namespace", e.Namespace); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "data entry %d", i)
			}
		}

		s := data.Namespace(ns).Set(e.Set)
		if s == nil {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "data entry %d: %q is not a set", i, e.Set)
		}
		s.Add(indexOf(e.Index), normalize(e.Members)...)
	}

	return &Dataset{
		Model: &portal.StaticModel{Sets: f.Model.Sets, Params: f.Model.Params},
		Data:  data,
	}, nil
}

func indexOf(v any) portal.Index {
	switch x := v.(type) {
	case nil:
		return portal.NoIndex
	case []any:
		return portal.IndexOf(normalize(x)...)
	}
	return portal.IndexOf(normalize([]any{v})...)
}

// normalize maps decoder-specific number types onto int and float64.
// JSON numbers arrive as [json.Number]; those written without a fraction or
// exponent become ints, the rest floats. TOML and YAML already tell the two
// apart, so their floats are kept as they are.
func normalize(vals []any) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case int64:
			out[i] = int(x)
		case json.Number:
			out[i] = number(x)
		case []any:
			out[i] = portal.FormatValue(normalize(x))
		default:
			out[i] = v
		}
	}
	return out
}

func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
