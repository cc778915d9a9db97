package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/barrel/pkg/errors"
)

const (
	// AppName names the state directory
	AppName = "barrel"

	// LogFileName is the name of the log file under the state directory
	LogFileName = "barrel.log"

	// EnvHome is the fallback for the home directory
	EnvHome = "HOME"

	// EnvStateHome overrides the XDG state directory
	EnvStateHome = "XDG_STATE_HOME"
)

// Normalize expands a leading ~, makes path absolute against workDir and
// cleans it.
func Normalize(workDir, path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrConfig, "empty path")
	}

	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(workDir, expanded)
	}
	return filepath.Clean(expanded), nil
}

// ExpandHome expands ~ and ~/... to the home directory. Other paths,
// including ~user, are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	if len(path) == 1 {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrConfig, "failed to get home directory")
	}
	return homeDir, nil
}

// StateDir returns barrel's state directory.
// XDG_STATE_HOME wins when set, otherwise the platform state directory is used.
func StateDir() string {
	stateHome := os.Getenv(EnvStateHome)
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return ""
	}
	return filepath.Join(stateHome, AppName)
}

// LogFilePath returns the path to the log file, relative to the working
// directory when no state directory can be determined.
func LogFilePath() string {
	dir := StateDir()
	if dir == "" {
		return LogFileName
	}
	return filepath.Join(dir, LogFileName)
}
