package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCLI()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestKeys(t *testing.T) {
	path := writeFile(t, "in.json", "{\n  \"a\": 1,\n\t\"b/c\": [2]\n}\n")
	stdout, stderr, err := runCLI(t, "", "--keys", path)
	if err != nil {
		t.Fatalf("Execute: %v\n%s", err, stderr)
	}
	want := path + "\t/a\t2:4-2:6\n" +
		path + "\t/b~1c\t3:6-3:10\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
}

func TestPointer(t *testing.T) {
	stdout, stderr, err := runCLI(t, `{"x": [true, {"y": "z"}]}`, "--pointer", "/x/1/y", "-")
	if err != nil {
		t.Fatalf("Execute: %v\n%s", err, stderr)
	}
	if want := "-\t/x/1/y\t1:20-1:23\t\"z\"\n"; stdout != want {
		t.Errorf("Output: got %q, want %q", stdout, want)
	}

	_, stderr, err = runCLI(t, `{"x": []}`, "--pointer", "/x/0", "-")
	if !errors.Is(err, errFailed) {
		t.Errorf("Missing element: got %v, want failure", err)
	} else if !strings.Contains(stderr, "out of range") {
		t.Errorf("Missing element: stderr %q", stderr)
	}

	if _, _, err := runCLI(t, `{}`, "--pointer", "x", "-"); err == nil || errors.Is(err, errFailed) {
		t.Errorf("Bad pointer: got %v, want a usage error", err)
	}
}

func TestSyntaxError(t *testing.T) {
	good := writeFile(t, "good.json", `[1, 2]`)
	bad := writeFile(t, "bad.json", "[1,\n  2,]")
	_, stderr, err := runCLI(t, "", good, bad)
	if !errors.Is(err, errFailed) {
		t.Fatalf("Execute: got %v, want failure", err)
	}
	want := bad + ":2:5: Unexpected token ] in JSON at position 8\n"
	if stderr != want {
		t.Errorf("Stderr: got %q, want %q", stderr, want)
	}
}

func TestRelaxed(t *testing.T) {
	const input = "{\n  // comment\n  \"a\": [1, 2,],\n}"
	if _, _, err := runCLI(t, input, "-"); err == nil {
		t.Error("Strict mode accepted comments")
	}
	stdout, stderr, err := runCLI(t, input, "--relaxed", "--keys", "-")
	if err != nil {
		t.Fatalf("Execute: %v\n%s", err, stderr)
	}
	if want := "-\t/a\t3:4-3:6\n"; stdout != want {
		t.Errorf("Output: got %q, want %q", stdout, want)
	}
}

func TestMaxDepth(t *testing.T) {
	_, stderr, err := runCLI(t, "[[[]]]", "--max-depth", "2", "-")
	if !errors.Is(err, errFailed) {
		t.Fatalf("Execute: got %v, want failure", err)
	}
	if want := "-:1:3: JSON nesting depth exceeds 2 at position 2\n"; stderr != want {
		t.Errorf("Stderr: got %q, want %q", stderr, want)
	}
}
