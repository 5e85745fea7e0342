package asvsim

import "testing"

func TestCoord3DArithmetic(t *testing.T) {
	a := Coord3D{1, 2, 3}
	b := Coord3D{4, 5, 6}
	if got := a.Add(b); got != (Coord3D{5, 7, 9}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Coord3D{3, 3, 3}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Coord3D{2, 4, 6}) {
		t.Fatalf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Fatalf("Dot: got %v, want 32", got)
	}
}

func TestCoord3DCross(t *testing.T) {
	i := Coord3D{1, 0, 0}
	j := Coord3D{0, 1, 0}
	k := Coord3D{0, 0, 1}
	if got := i.Cross(j); got != k {
		t.Fatalf("i x j = %v, want %v", got, k)
	}
	if got := j.Cross(k); got != i {
		t.Fatalf("j x k = %v, want %v", got, i)
	}
}

func TestCoord3DUnit(t *testing.T) {
	c := Coord3D{3, 4, 0}
	u := c.Unit()
	if !equalWithinAbs(u.Norm(), 1, 1e-9) {
		t.Fatalf("unit vector norm = %v, want 1", u.Norm())
	}
	if z := (Coord3D{}).Unit(); z != (Coord3D{}) {
		t.Fatalf("Unit of zero vector = %v, want zero", z)
	}
}

func TestRigidBodyDOFAccessors(t *testing.T) {
	d := RigidBodyDOF{1, 2, 3, 4, 5, 6}
	if d.Surge() != 1 || d.Sway() != 2 || d.Heave() != 3 {
		t.Fatal("linear accessors wrong")
	}
	if d.Roll() != 4 || d.Pitch() != 5 || d.Yaw() != 6 {
		t.Fatal("angular accessors wrong")
	}
}

func TestRigidBodyDOFArithmetic(t *testing.T) {
	a := RigidBodyDOF{1, 1, 1, 1, 1, 1}
	b := RigidBodyDOF{2, 2, 2, 2, 2, 2}
	if got := a.Add(b); got != (RigidBodyDOF{3, 3, 3, 3, 3, 3}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (RigidBodyDOF{1, 1, 1, 1, 1, 1}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := a.Scale(3); got != (RigidBodyDOF{3, 3, 3, 3, 3, 3}) {
		t.Fatalf("Scale: got %v", got)
	}
}

func TestNormalisePIBoundary(t *testing.T) {
	if got := NormalisePI(-pi); !equalWithinAbs(got, pi, 1e-12) {
		t.Fatalf("NormalisePI(-pi) = %v, want pi", got)
	}
	if got := NormalisePI(pi); !equalWithinAbs(got, pi, 1e-12) {
		t.Fatalf("NormalisePI(pi) = %v, want pi", got)
	}
	if got := NormalisePI(0); got != 0 {
		t.Fatalf("NormalisePI(0) = %v, want 0", got)
	}
	if got := NormalisePI(3 * pi); !equalWithinAbs(got, pi, 1e-9) {
		t.Fatalf("NormalisePI(3pi) = %v, want pi", got)
	}
}

func TestNormalise2PIBoundary(t *testing.T) {
	if got := Normalise2PI(twoPi); !equalWithinAbs(got, 0, 1e-12) {
		t.Fatalf("Normalise2PI(2pi) = %v, want 0", got)
	}
	if got := Normalise2PI(-pi / 2); !equalWithinAbs(got, 3*pi/2, 1e-9) {
		t.Fatalf("Normalise2PI(-pi/2) = %v, want 3pi/2", got)
	}
}

func TestNormalisePIIdempotent(t *testing.T) {
	for a := -4 * pi; a <= 4*pi; a += pi / 7 {
		n1 := NormalisePI(a)
		n2 := NormalisePI(n1)
		if !equalWithinAbs(n1, n2, 1e-9) {
			t.Fatalf("NormalisePI not idempotent at %v: %v != %v", a, n1, n2)
		}
	}
}
