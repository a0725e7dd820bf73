package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewApp_Commands(t *testing.T) {
	app := newApp()

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
		assert.NotNil(t, cmd.Action, cmd.Name)
	}

	assert.Equal(t, []string{"up", "down", "status", "reset", "version"}, names)
}
