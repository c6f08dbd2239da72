package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigPath_Priority(t *testing.T) {
	originalEnv := os.Getenv("OVHTUI_CONFIG")
	defer func() { _ = os.Setenv("OVHTUI_CONFIG", originalEnv) }()

	// CLI flag takes precedence
	result := getConfigPath("/custom/config.json")
	assert.Equal(t, "/custom/config.json", result)

	// Environment variable when no flag
	_ = os.Setenv("OVHTUI_CONFIG", "/env/config.json")
	result = getConfigPath("")
	assert.Equal(t, "/env/config.json", result)

	// Default when neither flag nor env
	_ = os.Unsetenv("OVHTUI_CONFIG")
	result = getConfigPath("")
	assert.Contains(t, result, "config.json")
}

func TestGetEndpoint_Priority(t *testing.T) {
	originalEnv := os.Getenv("OVHTUI_ENDPOINT")
	defer func() { _ = os.Setenv("OVHTUI_ENDPOINT", originalEnv) }()

	// CLI flag takes precedence
	_ = os.Setenv("OVHTUI_ENDPOINT", "http://env:5000")
	result := getEndpoint("http://flag:5000", "http://config:5000")
	assert.Equal(t, "http://flag:5000", result)

	// Environment variable when no flag
	result = getEndpoint("", "http://config:5000")
	assert.Equal(t, "http://env:5000", result)

	// Config value when neither
	_ = os.Unsetenv("OVHTUI_ENDPOINT")
	result = getEndpoint("", "http://config:5000")
	assert.Equal(t, "http://config:5000", result)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	assert.Equal(t, "/absolute/path", expandPath("/absolute/path"))
	assert.Equal(t, "relative/path", expandPath("relative/path"))
	assert.Equal(t, home, expandPath("~"))

	expanded := expandPath("~/config.json")
	assert.Equal(t, filepath.Join(home, "config.json"), expanded)
	assert.False(t, strings.HasPrefix(expanded, "~"))
}
