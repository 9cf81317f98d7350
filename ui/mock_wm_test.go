package ui

import "github.com/stretchr/testify/mock"

// MockManager is a mock implementation of the wm.Manager interface.
type MockManager struct {
	mock.Mock
}

func (m *MockManager) SetClickThrough(on bool) error {
	args := m.Called(on)
	return args.Error(0)
}

func (m *MockManager) SetToolWindow() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockManager) AttachToDesktopLayer(on bool) error {
	args := m.Called(on)
	return args.Error(0)
}

func (m *MockManager) SetTopmost(on bool) error {
	args := m.Called(on)
	return args.Error(0)
}

func (m *MockManager) Position() (int, int, error) {
	args := m.Called()
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockManager) Move(x, y int) error {
	args := m.Called(x, y)
	return args.Error(0)
}
