package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/ui"
)

func TestResolveCommand(t *testing.T) {
	stdout, err := executeCommand(t, "resolve", "button", "--set", "size=sm", "--set", "icon=true", "--class", "mt-2")
	require.NoError(t, err)
	require.Equal(t, ui.ButtonClass(ui.ButtonProps{Size: "sm", Icon: true, Class: "mt-2"})+"\n", stdout)
}

func TestResolveCommand_NamedSchema(t *testing.T) {
	stdout, err := executeCommand(t, "resolve", "dialog", "dialog-content", "--set", "size=xl")
	require.NoError(t, err)
	require.Contains(t, strings.Fields(stdout), "sm:max-w-6xl")
}

func TestResolveCommand_Fragments(t *testing.T) {
	stdout, err := executeCommand(t, "resolve", "alert", "--set", "type=error", "--fragments", "--class", "p-6")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, ui.AlertVariants.Base(), lines[0])
	require.Contains(t, lines[1], "border-destructive")
	require.Equal(t, "p-6", lines[2])
}

func TestResolveCommand_SchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base: rounded-full px-2
axes:
  - name: tone
    default: neutral
    options:
      - {name: neutral, class: bg-muted}
      - {name: danger, class: bg-destructive}
`), 0o644))

	stdout, err := executeCommand(t, "resolve", "--schema", path, "--set", "tone=danger", "--class", "px-3")
	require.NoError(t, err)
	require.Equal(t, "rounded-full bg-destructive px-3\n", stdout)
}

func TestResolveCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "no component", args: []string{"resolve"}, wantMsg: "no component given"},
		{name: "bad selection", args: []string{"resolve", "button", "--set", "size"}, wantMsg: "invalid selection"},
		{name: "unknown component", args: []string{"resolve", "tabs"}, wantErr: hxui.ErrNotFound},
		{name: "component without schema", args: []string{"resolve", "card"}, wantErr: hxui.ErrNotFound},
		{name: "component and schema file", args: []string{"resolve", "button", "--schema", "x.yaml"}, wantMsg: "cannot be combined"},
		{name: "missing schema file", args: []string{"resolve", "--schema", "does-not-exist.yaml"}, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				require.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection([]string{"size=sm", " icon = true ", "variant="})
	require.NoError(t, err)
	require.Equal(t, "sm", sel["size"])
	require.Equal(t, "true", sel["icon"])
	require.Equal(t, "", sel["variant"])

	_, err = parseSelection([]string{"=sm"})
	require.Error(t, err)
}
