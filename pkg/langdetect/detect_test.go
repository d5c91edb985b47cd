package langdetect_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/markview/pkg/langdetect"
)

func TestGuess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"shebang bash", "#!/bin/bash\necho hello", langdetect.Bash},
		{"shebang sh", "#!/bin/sh\necho hello", langdetect.Bash},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", langdetect.Python},
		{"go", "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}", langdetect.Go},
		{"python", "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()", langdetect.Python},
		{"javascript", "const x = () => { return 42; };\nconsole.log(x());", langdetect.JavaScript},
		{"json", `{"key": "value", "number": 123}`, langdetect.JSON},
		{"yaml", "key: value\nother: 123\nlist:\n  - item1\n  - item2", langdetect.YAML},
		{"rust", "fn main() {\n    println!(\"Hello, world!\");\n}", langdetect.Rust},
		{"sql", "SELECT * FROM users WHERE id = 1;", langdetect.SQL},
		{"html", "<!DOCTYPE html>\n<html>\n<body></body>\n</html>", langdetect.HTML},
		{"dockerfile", "FROM golang:1.21\nWORKDIR /app\nCOPY . .\nRUN go build", langdetect.Dockerfile},
		{"prose", "just some text without any code patterns", ""},
		{"empty", "", ""},
		{"whitespace", "   \n\t", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, langdetect.Guess(strings.Split(tt.content, "\n")))
		})
	}
}

func TestGuess_ShebangWins(t *testing.T) {
	t.Parallel()

	lines := []string{"#!/bin/bash", "def foo():", "    pass"}
	assert.Equal(t, langdetect.Bash, langdetect.Guess(lines))
}

func TestGuess_NilLines(t *testing.T) {
	t.Parallel()

	assert.Empty(t, langdetect.Guess(nil))
}

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Go", langdetect.Label("go"))
	assert.Equal(t, "Python", langdetect.Label("python"))
	assert.Empty(t, langdetect.Label(""))
	assert.Equal(t, "no-such-lang", langdetect.Label("no-such-lang"))
}
