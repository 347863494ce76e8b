package match3

import "testing"

func TestMatchesAt(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		origin Coord
		want   []Coord
	}{
		{
			name: "horizontal run of three",
			rows: []string{
				"aaab",
				"bcbc",
				"cbcb",
			},
			origin: C(1, 0),
			want:   []Coord{C(0, 0), C(1, 0), C(2, 0)},
		},
		{
			name: "run of two does not qualify",
			rows: []string{
				"aabc",
				"bcbc",
				"cbcb",
			},
			origin: C(0, 0),
			want:   nil,
		},
		{
			name: "vertical run of three",
			rows: []string{
				"abc",
				"acb",
				"abc",
			},
			origin: C(0, 1),
			want:   []Coord{C(0, 0), C(0, 1), C(0, 2)},
		},
		{
			name: "cross counts both lines once",
			rows: []string{
				"babc",
				"aaab",
				"bacb",
			},
			origin: C(1, 1),
			want:   []Coord{C(0, 1), C(1, 1), C(2, 1), C(1, 0), C(1, 2)},
		},
		{
			name: "origin at run end",
			rows: []string{
				"aaab",
				"bcbc",
				"cbcb",
			},
			origin: C(0, 0),
			want:   []Coord{C(0, 0), C(1, 0), C(2, 0)},
		},
		{
			name: "run of four",
			rows: []string{
				"aaaa",
				"bcbc",
				"cbcb",
			},
			origin: C(2, 0),
			want:   []Coord{C(0, 0), C(1, 0), C(2, 0), C(3, 0)},
		},
		{
			name: "destroyed origin is inert",
			rows: []string{
				"aAab",
				"bcbc",
				"cbcb",
			},
			origin: C(1, 0),
			want:   nil,
		},
		{
			name: "destroyed tile breaks the run",
			rows: []string{
				"aAaa",
				"bcbc",
				"cbcb",
			},
			origin: C(2, 0),
			want:   nil,
		},
		{
			name:   "out of bounds origin",
			rows:   []string{"abc"},
			origin: C(5, 5),
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromRows(t, tt.rows)
			finder := NewMatchFinder(g)

			got := finder.MatchesAt(tt.origin)
			if got.Len() != len(tt.want) {
				t.Fatalf("MatchesAt(%s) has %d coords, want %d", tt.origin, got.Len(), len(tt.want))
			}
			for _, c := range tt.want {
				if !got.Has(c) {
					t.Errorf("MatchesAt(%s) missing %s", tt.origin, c)
				}
			}
		})
	}
}

func TestAllMatches(t *testing.T) {
	// Top row and left column each hold a run of three sharing the corner.
	g := gridFromRows(t, []string{
		"aaab",
		"acbc",
		"abcb",
		"bcbc",
	})
	finder := NewMatchFinder(g)

	got := finder.AllMatches()
	want := []Coord{C(0, 0), C(1, 0), C(2, 0), C(0, 1), C(0, 2)}
	if got.Len() != len(want) {
		t.Fatalf("AllMatches has %d coords, want %d", got.Len(), len(want))
	}
	for _, c := range want {
		if !got.Has(c) {
			t.Errorf("AllMatches missing %s", c)
		}
	}
}

func TestAllMatchesStableBoard(t *testing.T) {
	g := gridFromRows(t, []string{
		"abab",
		"baba",
		"abab",
	})
	finder := NewMatchFinder(g)

	if got := finder.AllMatches(); got.Len() != 0 {
		t.Errorf("AllMatches on a stable board returned %d coords", got.Len())
	}
}
