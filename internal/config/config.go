package config

import "sync"

// CameraSettings holds fly-camera tuning values
type CameraSettings struct {
	mu               sync.RWMutex
	mouseSensitivity float64
	moveSpeed        float32
	shiftMultiplier  float32
}

var globalCameraSettings = &CameraSettings{
	mouseSensitivity: 0.1,
	moveSpeed:        20.0,
	shiftMultiplier:  2.0,
}

// GetMouseSensitivity returns the mouse-look sensitivity in degrees per pixel
func GetMouseSensitivity() float64 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.mouseSensitivity
}

// SetMouseSensitivity sets the mouse-look sensitivity
func SetMouseSensitivity(s float64) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	// Clamp to reasonable values
	if s < 0.01 {
		s = 0.01
	}
	if s > 1.0 {
		s = 1.0
	}
	globalCameraSettings.mouseSensitivity = s
}

// GetMoveSpeed returns the camera movement speed in blocks per second
func GetMoveSpeed() float32 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.moveSpeed
}

// SetMoveSpeed sets the camera movement speed
func SetMoveSpeed(s float32) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	if s < 1 {
		s = 1
	}
	if s > 100 {
		s = 100
	}
	globalCameraSettings.moveSpeed = s
}

// GetShiftMultiplier returns the speed factor applied while shift is held
func GetShiftMultiplier() float32 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.shiftMultiplier
}
