package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
strict_lexing?: bool
`

func writeCue(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "test.cue", `
str: "bar"
list: [1, 2, 3]
`),
	}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "test.cue", `str: "bar"`),
		writeCue(t, "test2.cue", `str: "foo"`),
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str := range All[string](loader, "str") {
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "bad.cue", `unknown_field: 42`),
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFileSkipped(t *testing.T) {
	loader := NewLoader([]string{
		filepath.Join(t.TempDir(), "no-such.cue"),
		writeCue(t, "test.cue", `strict_lexing: true`),
	}, Schema)

	var strict bool
	err := loader.AssignFirst("strict_lexing", &strict)
	if err != nil {
		t.Fatal(err)
	}
	if !strict {
		t.Fatalf("got %v", strict)
	}
}
