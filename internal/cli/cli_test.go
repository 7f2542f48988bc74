package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/portal"
)

// newTestCLI returns a CLI whose output is captured and whose default
// options file lives in an empty temporary config directory.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, logs bytes.Buffer
	return New(&out, &logs, LogInfo), &out
}

func execute(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFormatsCommand(t *testing.T) {
	c, out := newTestCLI(t)
	if err := execute(t, c, "formats"); err != nil {
		t.Fatalf("formats error = %v", err)
	}
	if !strings.Contains(out.String(), "dat") || !strings.Contains(out.String(), "data command file") {
		t.Errorf("formats output = %q, want the dat format listed", out.String())
	}
}

func TestFormatsCommandEmptyRegistry(t *testing.T) {
	c, out := newTestCLI(t)
	c.Registry = portal.NewRegistry()
	if err := execute(t, c, "formats"); err != nil {
		t.Fatalf("formats error = %v", err)
	}
	if !strings.Contains(out.String(), "No formats registered") {
		t.Errorf("formats output = %q", out.String())
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "model.dat")
	writeFile(t, good, "set S := 1 ;\n")

	c, out := newTestCLI(t)
	if err := execute(t, c, "check", good); err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(out.String(), good) {
		t.Errorf("check output = %q, want the file listed", out.String())
	}

	c, out = newTestCLI(t)
	err := execute(t, c, "check", good, filepath.Join(dir, "missing.dat"), filepath.Join(dir, "model.csv"))
	if err == nil || !strings.Contains(err.Error(), "2 of 3 files failed") {
		t.Errorf("check error = %v, want 2 of 3 failures", err)
	}
	if !strings.Contains(out.String(), "cannot find file") {
		t.Errorf("check output = %q, want missing file reported", out.String())
	}
}

func TestCheckCommandFormatOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.txt")
	writeFile(t, path, "set S := 1 ;\n")

	c, _ := newTestCLI(t)
	if err := execute(t, c, "check", "--format", "dat", path); err != nil {
		t.Fatalf("check --format error = %v", err)
	}
}

func TestWriteCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sets.toml")
	writeFile(t, input, `
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
`)
	output := filepath.Join(dir, "out.dat")

	c, out := newTestCLI(t)
	if err := execute(t, c, "write", input, "-o", output); err != nil {
		t.Fatalf("write error = %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := "set S := 1 \n2 \n3 \n;\n\nset T[a] := 1 \n;\n\nset T[b] := 2 \n3 \n;\n\n"
	if string(got) != want {
		t.Errorf("output file =\n%q\nwant\n%q", got, want)
	}
	if !strings.Contains(out.String(), output) {
		t.Errorf("write output = %q, want output path listed", out.String())
	}
}

func TestWriteCommandParamFails(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sets.json")
	writeFile(t, input, `{"model": {"sets": ["S"], "params": ["p"]}, "data": [{"set": "S", "members": [1]}]}`)

	c, _ := newTestCLI(t)
	err := execute(t, c, "write", input, "-o", filepath.Join(dir, "out.dat"))
	if !errors.Is(err, errors.ErrCodeNotImplemented) {
		t.Errorf("write error = %v, want NOT_IMPLEMENTED", err)
	}
}

func TestWriteCommandRequiresOutput(t *testing.T) {
	c, _ := newTestCLI(t)
	if err := execute(t, c, "write", "sets.toml"); err == nil {
		t.Error("write without --output should fail")
	}
}

func TestLoadCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.dat")
	writeFile(t, path, "set S := 1 ;\n")
	writeFile(t, filepath.Join(dir, "options.toml"), "format = \"set\"\n")

	var gotOpts portal.Options
	c, out := newTestCLI(t)
	c.Processor = portal.IncludeProcessorFunc(func(_ context.Context, cmd []string, m portal.Model, d *portal.Data, _ portal.Defaults, opts portal.Options) error {
		gotOpts = opts
		for _, name := range m.ComponentMap(portal.KindSet) {
			d.Namespace("NS1").Put(name, portal.NewSet(1))
		}
		return nil
	})

	err := execute(t, c, "--config", filepath.Join(dir, "options.toml"), "load", path, "--set", "S", "--namespace", "NS1")
	if err != nil {
		t.Fatalf("load error = %v", err)
	}

	want := portal.Options{"format": "set", "namespace": []string{"NS1"}}
	if diff := cmp.Diff(want, gotOpts); diff != "" {
		t.Errorf("processor options mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "NS1") {
		t.Errorf("load output = %q, want namespace listed", out.String())
	}
}

func TestLoadCommandWithoutProcessor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.dat")
	writeFile(t, path, "set S := 1 ;\n")

	c, out := newTestCLI(t)
	if err := execute(t, c, "load", path); err != nil {
		t.Fatalf("load error = %v", err)
	}
	if !strings.Contains(out.String(), "No include processor configured") {
		t.Errorf("load output = %q, want a warning", out.String())
	}
}

func TestLoadCommandHelpNamesProcessor(t *testing.T) {
	c, _ := newTestCLI(t)
	if long := c.loadCommand().Long; !strings.Contains(long, "CLI.Processor") {
		t.Errorf("load help = %q, want it to mention CLI.Processor", long)
	}
}

func TestLoadCommandMissingFile(t *testing.T) {
	c, _ := newTestCLI(t)
	err := execute(t, c, "load", filepath.Join(t.TempDir(), "missing.dat"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("load error = %v, want FILE_NOT_FOUND", err)
	}
}
