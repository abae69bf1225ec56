package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Execute(t *testing.T) {
	t.Run("root command shows help", func(t *testing.T) {
		_, err := executeCmd(t)
		assert.NoError(t, err)
	})

	t.Run("help flag", func(t *testing.T) {
		output, err := executeCmd(t, "--help")
		assert.NoError(t, err)
		assert.Contains(t, output, "flowstack")
		assert.Contains(t, output, "Langflow")
	})
}

func TestRootCmd_Structure(t *testing.T) {
	t.Run("has expected subcommands", func(t *testing.T) {
		commands := rootCmd.Commands()
		commandNames := make([]string, 0, len(commands))
		for _, cmd := range commands {
			commandNames = append(commandNames, cmd.Name())
		}

		assert.Contains(t, commandNames, "build-yaml")
		assert.Contains(t, commandNames, "build")
		assert.Contains(t, commandNames, "up")
		assert.Contains(t, commandNames, "upd")
		assert.Contains(t, commandNames, "down")
		assert.Contains(t, commandNames, "ps")
		assert.Contains(t, commandNames, "logs")
		assert.Contains(t, commandNames, "clear")
		assert.Contains(t, commandNames, "init")
		assert.Contains(t, commandNames, "doctor")
		assert.Contains(t, commandNames, "update")
	})

	t.Run("render is an alias of build-yaml", func(t *testing.T) {
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == "build-yaml" {
				assert.Contains(t, cmd.Aliases, "render")
				return
			}
		}
		t.Fatal("build-yaml command not found")
	})

	t.Run("global flags registered", func(t *testing.T) {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup("env-file"))
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup("mode"))
	})
}
