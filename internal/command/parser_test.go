package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCmd  string
		wantArgs []string
	}{
		{
			name:     "command without arguments",
			text:     "/start",
			wantCmd:  "/start",
			wantArgs: nil,
		},
		{
			name:     "command with one argument",
			text:     "/setrate 55.5",
			wantCmd:  "/setrate",
			wantArgs: []string{"55.5"},
		},
		{
			name:     "command with two arguments",
			text:     "/sendusdt TXYZa1b2c3 5",
			wantCmd:  "/sendusdt",
			wantArgs: []string{"TXYZa1b2c3", "5"},
		},
		{
			name:     "extra whitespace between arguments",
			text:     "/sendusdt   TXYZa1b2c3    5",
			wantCmd:  "/sendusdt",
			wantArgs: []string{"TXYZa1b2c3", "5"},
		},
		{
			name:     "trailing whitespace",
			text:     "/setrate 40 ",
			wantCmd:  "/setrate",
			wantArgs: []string{"40"},
		},
		{
			name:     "plain text",
			text:     "hello there",
			wantCmd:  "hello",
			wantArgs: []string{"there"},
		},
		{
			name:     "empty string",
			text:     "",
			wantCmd:  "",
			wantArgs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := Parse(tt.text)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	text := "/sendusdt TXYZa1b2c3 12.75"

	cmd1, args1 := Parse(text)
	cmd2, args2 := Parse(text)

	assert.Equal(t, cmd1, cmd2)
	assert.Equal(t, args1, args2)
}
