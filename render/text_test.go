package render

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	got := Text(testFrame(t))
	want := strings.Join([]string{
		"+------+",
		"|    * |",
		"|  U X |",
		"+------+",
		"tick 2 | units 1 | arrived 0 | moved 1 | blocked 0 | no path 0",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}
