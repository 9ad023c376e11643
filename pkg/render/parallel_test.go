package render

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/taigrr/flatshade/pkg/math3d"
)

func randomFaces(n int, seed int64) []Face {
	rng := rand.New(rand.NewSource(seed))
	r := func() float64 { return rng.Float64()*2 - 1 }
	faces := make([]Face, n)
	for i := range faces {
		faces[i] = Tri(math3d.V3(r(), r(), r()), math3d.V3(r(), r(), r()), math3d.V3(r(), r(), r()))
	}
	return faces
}

func TestBands(t *testing.T) {
	tests := []struct {
		height, k int
		want      [][2]int
	}{
		{10, 1, [][2]int{{0, 10}}},
		{10, 3, [][2]int{{0, 3}, {3, 6}, {6, 10}}},
		{3, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{5, 0, [][2]int{{0, 5}}},
	}
	for _, tc := range tests {
		got := Bands(tc.height, tc.k)
		if len(got) != len(tc.want) {
			t.Errorf("Bands(%d, %d) = %v, want %v", tc.height, tc.k, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("Bands(%d, %d) = %v, want %v", tc.height, tc.k, got, tc.want)
				break
			}
		}
	}
}

func TestRenderBandedMatchesSequential(t *testing.T) {
	faces := randomFaces(300, 1)
	faces = append(faces, Face{math3d.V3(0, 0, 0)}, Tri(math3d.V3(math.NaN(), 0, 0), math3d.V3(0, 1, 0), math3d.V3(1, 0, 0)))

	seq, _ := NewPass(testConfig(256))
	want := seq.Render(faces)
	wantFB := seq.Finish()

	for _, workers := range []int{2, 3, 8, 64} {
		cfg := testConfig(256)
		cfg.Workers = workers
		par, err := NewPass(cfg)
		if err != nil {
			t.Fatal(err)
		}
		got := par.Render(faces)
		if got != want {
			t.Errorf("workers=%d: stats = %+v, want %+v", workers, got, want)
		}
		gotFB := par.Finish()
		for i := range wantFB.Pixels {
			if gotFB.Pixels[i] != wantFB.Pixels[i] {
				t.Fatalf("workers=%d: pixel %d differs", workers, i)
			}
		}
	}
}

func BenchmarkRender(b *testing.B) {
	faces := randomFaces(2000, 7)
	for _, workers := range []int{1, 4} {
		cfg := testConfig(512)
		cfg.Workers = workers
		b.Run("workers="+strconv.Itoa(workers), func(b *testing.B) {
			for b.Loop() {
				p, _ := NewPass(cfg)
				p.Render(faces)
			}
		})
	}
}
