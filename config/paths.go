package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// GetConfigDir returns the platform-specific configuration directory
// Linux/Mac: ~/.config/contactcmd
// Windows: C:\Users\username\.config\contactcmd
func GetConfigDir() string {
	if runtime.GOOS == "windows" {
		userProfile := os.Getenv("USERPROFILE")
		return filepath.Join(userProfile, ".config", "contactcmd")
	}

	home := os.Getenv("HOME")
	return filepath.Join(home, ".config", "contactcmd")
}

// GetDefaultDataDir returns the platform-specific default data directory
// Linux/Mac: ~/.local/share/contactcmd
// Windows: C:\Users\username\AppData\Local\contactcmd
func GetDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			localAppData = filepath.Join(userProfile, "AppData", "Local")
		}
		return filepath.Join(localAppData, "contactcmd")
	}

	home := os.Getenv("HOME")
	return filepath.Join(home, ".local", "share", "contactcmd")
}

// GetSettingsFilePath returns the path to ai.toml
func GetSettingsFilePath() string {
	return filepath.Join(GetConfigDir(), "ai.toml")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home := os.Getenv("HOME")
	if runtime.GOOS == "windows" {
		home = os.Getenv("USERPROFILE")
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/"))
}

// FileExists reports whether a regular file exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates a directory with owner-only permissions if missing.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0700)
}
