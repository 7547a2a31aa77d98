package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslateThenScale(t *testing.T) {
	// Translate * Scale applies the scale first
	m := Translate(100, 0, -50).Mul(Scale(10, 10, 10))
	got := m.TransformPoint([3]float32{1, 2, 3})
	want := [3]float32{110, 20, -20}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateX90(t *testing.T) {
	m := RotateX(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{0, 0, 1})

	// (0,0,1) rotates onto -Y
	if abs(result[0]) > 0.001 || abs(result[1]+1) > 0.001 || abs(result[2]) > 0.001 {
		t.Errorf("RotateX 90: got %v, want (0, -1, 0)", result)
	}
}

func TestRotateAxisMatchesRotateY(t *testing.T) {
	angle := float32(0.7)
	a := RotateAxis(Vec3{0, 2, 0}, angle)
	b := RotateY(angle)
	for i := range a {
		if abs(a[i]-b[i]) > 1e-5 {
			t.Fatalf("element %d: axis %f, RotateY %f", i, a[i], b[i])
		}
	}
}

func TestInverse(t *testing.T) {
	m := Translate(5, -3, 2).Mul(RotateY(0.4)).Mul(Scale(2, 2, 2))
	id := m.Mul(m.Inverse())
	want := Identity()
	for i := range id {
		if abs(id[i]-want[i]) > 1e-4 {
			t.Fatalf("M * M^-1 element %d = %f, want %f", i, id[i], want[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if got := Scale(0, 1, 1).Inverse(); got != Identity() {
		t.Errorf("singular inverse should fall back to identity, got %v", got)
	}
}

func TestNormalMatrixUniformScale(t *testing.T) {
	n := Scale(10, 10, 10).NormalMatrix()
	d := n.TransformDirection(Vec3{0, 1, 0})
	if abs(d.X) > 1e-6 || abs(d.Y-0.1) > 1e-6 || abs(d.Z) > 1e-6 {
		t.Errorf("NormalMatrix direction = %v, want (0, 0.1, 0)", d)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, -400}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	p := m.TransformVec3(eye)
	if p.Length() > 1e-3 {
		t.Errorf("eye in view space = %v, want origin", p)
	}
	// The look point sits on -Z in view space
	c := m.TransformVec3(Vec3{})
	if abs(c.Z+400) > 1e-3 {
		t.Errorf("center in view space = %v, want z=-400", c)
	}
}

func TestMulVec4(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.MulVec4(Vec4{1, 1, 1, 1})
	if got != (Vec4{2, 3, 4, 1}) {
		t.Errorf("MulVec4 = %v", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
