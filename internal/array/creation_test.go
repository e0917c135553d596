package array

import (
	"errors"
	"testing"
)

func TestZerosOnes(t *testing.T) {
	m := NewMockBackend()

	z := Zeros[float64](Shape{2, 3}, m)
	assertShape(t, z, Shape{2, 3})
	assertFloats(t, z.Data(), []float64{0, 0, 0, 0, 0, 0})

	o := Ones[int64](Shape{4}, m)
	assertInts(t, o.Data(), []int64{1, 1, 1, 1})

	ob := Ones[bool](Shape{2}, m)
	if !ob.Data()[0] || !ob.Data()[1] {
		t.Errorf("Ones[bool] = %v, want all true", ob.Data())
	}
}

func TestFull(t *testing.T) {
	m := NewMockBackend()

	f := Full[float64](Shape{3}, 2.5, m)
	assertFloats(t, f.Data(), []float64{2.5, 2.5, 2.5})
}

func TestEye(t *testing.T) {
	m := NewMockBackend()

	e := Eye[float64](3, m)
	assertShape(t, e, Shape{3, 3})
	assertFloats(t, e.Data(), []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

func TestArange(t *testing.T) {
	m := NewMockBackend()

	tests := []struct {
		name              string
		start, stop, step int64
		want              []int64
	}{
		{"basic", 0, 5, 1, []int64{0, 1, 2, 3, 4}},
		{"step 2", 0, 10, 2, []int64{0, 2, 4, 6, 8}},
		{"negative step", 5, 0, -1, []int64{5, 4, 3, 2, 1}},
		{"empty range", 5, 0, 1, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Arange(tt.start, tt.stop, tt.step, m)
			if err != nil {
				t.Fatal(err)
			}
			assertInts(t, a.Data(), tt.want)
		})
	}

	f, err := Arange[float64](0, 1, 0.25, m)
	if err != nil {
		t.Fatal(err)
	}
	assertFloats(t, f.Data(), []float64{0, 0.25, 0.5, 0.75})
}

// Int64 ranges are built in integer arithmetic; a float64 detour would
// collapse values above 2^53.
func TestArangeInt64Exact(t *testing.T) {
	m := NewMockBackend()
	big := int64(1)<<62 + 1

	a, err := Arange(big, big+3, 1, m)
	if err != nil {
		t.Fatal(err)
	}
	assertInts(t, a.Data(), []int64{big, big + 1, big + 2})

	down, err := Arange(big+2, big-1, -1, m)
	if err != nil {
		t.Fatal(err)
	}
	assertInts(t, down.Data(), []int64{big + 2, big + 1, big})
}

func TestArangeZeroStep(t *testing.T) {
	m := NewMockBackend()

	if _, err := Arange[int64](0, 5, 0, m); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Arange with step 0: got %v, want ErrInvalidInput", err)
	}
}

func TestLinspace(t *testing.T) {
	m := NewMockBackend()

	a, err := Linspace(0, 1, 5, true, m)
	if err != nil {
		t.Fatal(err)
	}
	assertFloats(t, a.Data(), []float64{0, 0.25, 0.5, 0.75, 1})

	b, err := Linspace(0, 1, 4, false, m)
	if err != nil {
		t.Fatal(err)
	}
	assertFloats(t, b.Data(), []float64{0, 0.25, 0.5, 0.75})

	one, err := Linspace(3, 9, 1, true, m)
	if err != nil {
		t.Fatal(err)
	}
	assertFloats(t, one.Data(), []float64{3})

	zero, err := Linspace(0, 1, 0, true, m)
	if err != nil {
		t.Fatal(err)
	}
	if zero.Size() != 0 {
		t.Errorf("Linspace with 0 samples: size %d, want 0", zero.Size())
	}

	if _, err := Linspace(0, 1, -1, true, m); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Linspace with negative count: got %v, want ErrInvalidInput", err)
	}
}

func TestZeroExtentArrays(t *testing.T) {
	m := NewMockBackend()

	a := Zeros[float64](Shape{2, 0, 3}, m)
	assertShape(t, a, Shape{2, 0, 3})
	if a.Size() != 0 {
		t.Errorf("Size() = %d, want 0", a.Size())
	}
	if len(a.Data()) != 0 {
		t.Errorf("len(Data()) = %d, want 0", len(a.Data()))
	}
}
