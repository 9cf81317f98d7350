package log

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/dixieflatline76/PictureFrame/config"
)

// FilePath returns where release builds write their log: the user cache
// directory on Windows and a dot directory in the home directory elsewhere.
func FilePath() (string, error) {
	var dir string
	if runtime.GOOS == "windows" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, config.LogWinSubDir)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, config.LogSubDir)
	}
	return filepath.Join(dir, config.AppName+config.LogExt), nil
}
