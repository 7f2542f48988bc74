package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/portal"
	"github.com/matzehuels/dataportal/pkg/portal/datacmd"
)

const tomlDataset = `
[model]
sets = ["S", "T"]

[[data]]
set = "S"
members = [1, 2, 3]

[[data]]
set = "T"
index = "a"
members = [1]

[[data]]
set = "T"
index = "b"
members = [2, 3]
`

const yamlDataset = `
model:
  sets: [S, T]
data:
  - set: S
    members: [1, 2, 3]
  - set: T
    index: a
    members: [1]
  - set: T
    index: b
    members: [2, 3]
`

const jsonDataset = `{
  "model": {"sets": ["S", "T"]},
  "data": [
    {"set": "S", "members": [1, 2, 3]},
    {"set": "T", "index": "a", "members": [1]},
    {"set": "T", "index": "b", "members": [2, 3]}
  ]
}`

func TestDecodeFormats(t *testing.T) {
	sets := "set S := 1 \n2 \n3 \n;\n\nset T[a] := 1 \n;\n\nset T[b] := 2 \n3 \n;\n\n"
	floats := "set S := 2.0 \n1.5 \n2 \n;\n\nset T[3.0] := 1e-05 \n;\n\n"

	tests := []struct {
		name    string
		format  string
		content string
		want    string
	}{
		{"toml", "toml", tomlDataset, sets},
		{"yaml", "yaml", yamlDataset, sets},
		{"yml", "yml", yamlDataset, sets},
		{"json", "json", jsonDataset, sets},
		{"toml floats", "toml", `
[model]
sets = ["S", "T"]

[[data]]
set = "S"
members = [2.0, 1.5, 2]

[[data]]
set = "T"
index = 3.0
members = [1e-5]
`, floats},
		{"yaml floats", "yaml", `
model:
  sets: [S, T]
data:
  - set: S
    members: [2.0, 1.5, 2]
  - set: T
    index: 3.0
    members: [1.0e-5]
`, floats},
		{"json floats", "json", `{
  "model": {"sets": ["S", "T"]},
  "data": [
    {"set": "S", "members": [2.0, 1.5, 2]},
    {"set": "T", "index": 3.0, "members": [1e-5]}
  ]
}`, floats},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Decode(strings.NewReader(tt.content), tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff([]string{"S", "T"}, ds.Model.Sets); diff != "" {
				t.Errorf("model sets mismatch (-want +got):\n%s", diff)
			}

			var buf bytes.Buffer
			if err := datacmd.WriteSets(&buf, ds.Model, ds.Data); err != nil {
				t.Fatalf("WriteSets() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("written =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestDecodeNamespacesAndTuples(t *testing.T) {
	content := `
[model]
sets = ["S"]

[[data]]
namespace = "NS1"
set = "S"
index = [1, "x"]
members = [2.5, "y"]

[[data]]
set = "S"
members = []
`
	ds, err := Decode(strings.NewReader(content), "toml")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if diff := cmp.Diff([]portal.Namespace{"NS1", portal.Global}, ds.Data.Namespaces()); diff != "" {
		t.Errorf("namespaces mismatch (-want +got):\n%s", diff)
	}

	b, _ := ds.Data.Lookup("NS1")
	s := b.Set("S")
	got, ok := s.Members("1,x")
	if !ok {
		t.Fatalf("tuple index not found, have %v", s.Indices())
	}
	if diff := cmp.Diff([]any{2.5, "y"}, got); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		content string
		code    errors.Code
	}{
		{"unknown format", "ini", "", errors.ErrCodeInvalidFormat},
		{"bad toml", "toml", "[model", errors.ErrCodeInvalidDataset},
		{"unknown toml key", "toml", "colour = 1", errors.ErrCodeInvalidDataset},
		{"unknown json key", "json", `{"extra": 1}`, errors.ErrCodeInvalidDataset},
		{"unknown yaml key", "yaml", "extra: 1", errors.ErrCodeInvalidDataset},
		{"bad set name", "json", `{"model": {"sets": ["S T"]}}`, errors.ErrCodeInvalidName},
		{"bad param name", "json", `{"model": {"params": ["1p"]}}`, errors.ErrCodeInvalidName},
		{"entry without set", "json", `{"data": [{"members": [1]}]}`, errors.ErrCodeInvalidDataset},
		{"bad namespace", "json", `{"data": [{"namespace": "a-b", "set": "S", "members": [1]}]}`, errors.ErrCodeInvalidDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sets.yaml")
	if err := os.WriteFile(path, []byte(yamlDataset), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Data.Len() != 1 {
		t.Errorf("namespaces = %d, want 1", ds.Data.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
