package material

import (
	"math"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestDefaultPhong(t *testing.T) {
	m := DefaultPhong()

	if m.Color != core.White {
		t.Errorf("Expected white default color, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected default parameters: %+v", *m)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Default material should be valid: %v", err)
	}
}

func TestPhong_WithColorLeavesOriginal(t *testing.T) {
	base := DefaultPhong()
	tinted := base.WithColor(core.NewColor(1, 0.2, 1))

	if base.Color != core.White {
		t.Errorf("WithColor modified the original material: %v", base.Color)
	}
	if tinted.Color != core.NewColor(1, 0.2, 1) {
		t.Errorf("Expected tinted color, got %v", tinted.Color)
	}
	if tinted.Shininess != base.Shininess {
		t.Errorf("Expected shininess to be carried over, got %f", tinted.Shininess)
	}
}

func TestPhong_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(m *Phong)
		expectError bool
	}{
		{"valid", func(m *Phong) {}, false},
		{"zero terms allowed", func(m *Phong) { m.Ambient, m.Diffuse, m.Specular = 0, 0, 0 }, false},
		{"negative ambient", func(m *Phong) { m.Ambient = -0.1 }, true},
		{"NaN diffuse", func(m *Phong) { m.Diffuse = math.NaN() }, true},
		{"infinite specular", func(m *Phong) { m.Specular = math.Inf(1) }, true},
		{"zero shininess", func(m *Phong) { m.Shininess = 0 }, true},
		{"negative shininess", func(m *Phong) { m.Shininess = -5 }, true},
		{"negative color", func(m *Phong) { m.Color = core.NewColor(-1, 0, 0) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultPhong()
			tt.modify(m)
			err := m.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}

	var nilMaterial *Phong
	if err := nilMaterial.Validate(); err == nil {
		t.Error("Expected error for nil material")
	}
}
