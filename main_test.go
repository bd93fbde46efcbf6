package main

import (
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"checkered scene", "checkered", false},
		{"earth scene", "earth", false},
		{"quads scene", "quads", false},
		{"lights scene", "lights", false},
		{"cornell scene", "cornell", false},
		{"cornell-smoke scene", "cornell-smoke", false},
		{"reduced final scene", "final-reduced", false},

		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, nil)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if s.CameraConfig.ImageWidth <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", s.CameraConfig.ImageWidth)
			}
			if len(s.World) == 0 {
				t.Errorf("Scene world should not be empty")
			}
		})
	}
}
