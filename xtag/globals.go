package internal

import (
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName is the canonical binary and config-directory name.
	DefaultAppName    = "xtag"
	DefaultConfigPath = filepath.Join(getHomeDir(), ".config", DefaultAppName)
	DefaultConfigFile = filepath.Join(DefaultConfigPath, "config.yaml")

	// DefaultIgnoreFile is looked up in each scan root to prune entries.
	DefaultIgnoreFile = "." + DefaultAppName + "-ignore"

	// DefaultNamespace is the xattr prefix shared with the shatag family
	// of tools, so tags written by one are readable by the others.
	DefaultNamespace = "user.shatag."

	// DefaultAlgorithm matches the only algorithm the original python
	// shatag utility supports.
	DefaultAlgorithm = "sha256"
)

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current working directory if home directory is unavailable
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			// Last resort - use tmp directory
			log.Printf("Unable to get home or working directory, using /tmp: %v", err)
			return "/tmp"
		}
		log.Printf("Unable to get home directory, using current working directory: %v", err)
		return cwd
	}
	return homeDir
}

// GetLogger returns a properly configured zerolog logger instance
func GetLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
