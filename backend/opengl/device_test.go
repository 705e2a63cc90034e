package opengl

import (
	"testing"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/colors"
)

func TestReadInfoLog(t *testing.T) {
	tests := []struct {
		name      string
		driverLog string
		logLength int32
		maxLen    int
		want      string
	}{
		{"empty", "", 0, 512, ""},
		{"terminator only", "", 1, 512, ""},
		{"fits", "0:3(5): error: x", 17, 512, "0:3(5): error: x"},
		{"truncated", "0123456789", 11, 5, "0123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readInfoLog(tt.logLength, tt.maxLen, func(n int32, buf *uint8) {
				// Mimic the driver: copy at most n-1 bytes and terminate.
				dst := unsafe.Slice(buf, int(n))
				c := copy(dst[:n-1], tt.driverLog)
				dst[c] = 0
			})
			if got != tt.want {
				t.Errorf("readInfoLog() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGLFWKeyMapping(t *testing.T) {
	if got := glfwKeyToKey(glfw.KeyEscape); got != colors.KeyEscape {
		t.Errorf("escape mapped to %v", got)
	}
	if got := glfwKeyToKey(glfw.KeyQ); got != colors.KeyNone {
		t.Errorf("unmapped key returned %v", got)
	}
}

func TestGLStage(t *testing.T) {
	if glStage(colors.StageVertex) == glStage(colors.StageFragment) {
		t.Error("stages must map to distinct GL enums")
	}
}
