package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "test.cue", `str: "bar"`),
	}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	// absent path yields the zero value
	strict := First[bool](loader, "strict_lexing")
	if strict {
		t.Fatalf("got %v", strict)
	}

}
