package testtools

import "testing"

func TestRankAvg_Ties(t *testing.T) {
	ranks, tieSum := rankAvg([]float64{1, 2, 2, 3})
	want := []float64{1, 2.5, 2.5, 4}
	for i := range want {
		if ranks[i] != want[i] {
			t.Errorf("rank[%d] = %f, want %f", i, ranks[i], want[i])
		}
	}
	// One tie group of size 2: 2^3 - 2 = 6
	if tieSum != 6 {
		t.Errorf("tieSum = %f, want 6", tieSum)
	}
}

func TestRankAvg_NoTies(t *testing.T) {
	ranks, tieSum := rankAvg([]float64{30, 10, 20})
	want := []float64{3, 1, 2}
	for i := range want {
		if ranks[i] != want[i] {
			t.Errorf("rank[%d] = %f, want %f", i, ranks[i], want[i])
		}
	}
	if tieSum != 0 {
		t.Errorf("tieSum = %f, want 0", tieSum)
	}
}

func TestRankAvg_AllEqual(t *testing.T) {
	ranks, tieSum := rankAvg([]float64{5, 5, 5, 5})
	for i, r := range ranks {
		if r != 2.5 {
			t.Errorf("rank[%d] = %f, want 2.5", i, r)
		}
	}
	if tieSum != 60 { // 4^3 - 4
		t.Errorf("tieSum = %f, want 60", tieSum)
	}
}
