package config

import (
	"strings"
	"time"
)

// AppVersion is the version of the application.
var AppVersion string // Set with -ldflags during release builds

// AppName is the name of the application.
const AppName = "PictureFrame"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// ConfigFileName is the name of the optional start-up configuration file.
const ConfigFileName = "pictureframe.yaml"

// FramesDirName is the frames folder looked up next to the executable.
const FramesDirName = "Frames"

// PhotoSubDir is the default photo folder under the user's Pictures directory.
const PhotoSubDir = "PictureFrame"

const (
	// DefaultInterval is how long each picture stays up.
	DefaultInterval = 10 * time.Second

	// DefaultWidth and DefaultHeight are the initial widget size in pixels.
	DefaultWidth  = 520
	DefaultHeight = 380

	// MinWidth and MinHeight bound grip resizing.
	MinWidth  = 240
	MinHeight = 180
)

// Crop modes accepted by crop_mode.
const (
	CropModeCenter = "center"
	CropModeSmart  = "smart"
)
