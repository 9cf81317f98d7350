// Package asset serves the resources embedded in the binary.
package asset

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/PictureFrame/util/log"
)

//go:embed icons/*
var assets embed.FS

// AppIcon is the name of the application icon.
const AppIcon = "app.png"

// Manager manages the loading of UI assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetIcon loads and returns embedded icon asset by name.
func (am *Manager) GetIcon(name string) (fyne.Resource, error) {
	if name == "" {
		return nil, fmt.Errorf("icon name is empty")
	}

	iconData, err := assets.ReadFile("icons/" + name)
	if err != nil {
		log.Println("Error loading icon:", err)
		return nil, err
	}

	return fyne.NewStaticResource(name, iconData), nil
}

// GetIconImage decodes an embedded icon into an image.
func (am *Manager) GetIconImage(name string) (image.Image, error) {
	data, err := assets.ReadFile("icons/" + name)
	if err != nil {
		log.Println("Error loading icon:", err)
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Println("Error decoding icon:", err)
		return nil, err
	}
	return img, nil
}
