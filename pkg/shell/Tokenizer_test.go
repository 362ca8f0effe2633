package shell

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "Plain words",
			line:     "echo hello world",
			expected: []string{"echo", "hello", "world"},
		},
		{
			name:     "Double quoted region",
			line:     `echo "hello world"`,
			expected: []string{"echo", "hello world"},
		},
		{
			name:     "Single quoted region",
			line:     "echo 'hello world'",
			expected: []string{"echo", "hello world"},
		},
		{
			name:     "Other quote character is literal inside a region",
			line:     `echo "He said 'Hello World'"`,
			expected: []string{"echo", "He said 'Hello World'"},
		},
		{
			name:     "Empty input",
			line:     "",
			expected: []string{},
		},
		{
			name:     "Whitespace only",
			line:     "   ",
			expected: []string{},
		},
		{
			name:     "Isolated empty quotes contribute nothing",
			line:     `echo "" hello`,
			expected: []string{"echo", "hello"},
		},
		{
			name:     "Consecutive empty quote pairs collapse",
			line:     `echo """"`,
			expected: []string{"echo"},
		},
		{
			name:     "Glued quoted span stays one token",
			line:     `run --flag="a b" tail`,
			expected: []string{"run", "--flag=a b", "tail"},
		},
		{
			name:     "Unclosed quote closes at end of input",
			line:     `echo "unterminated value`,
			expected: []string{"echo", "unterminated value"},
		},
		{
			name:     "Mixed whitespace collapses",
			line:     "docker \t ps \n -a",
			expected: []string{"docker", "ps", "-a"},
		},
		{
			name:     "Empty splice glued to content",
			line:     `echo ab""cd`,
			expected: []string{"echo", "abcd"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.line))
		})
	}
}

func TestTokenizeIdempotence(t *testing.T) {
	lines := []string{
		"echo hello world",
		"docker ps -a --format json",
		"docker compose -f stack.yml up -d",
	}

	for _, line := range lines {
		first := Tokenize(line)
		second := Tokenize(strings.Join(first, " "))

		assert.Equal(t, first, second)
	}
}
