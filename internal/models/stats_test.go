package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeProbabilities(t *testing.T) {
	cases := []struct {
		name                string
		wins, draws, losses int
		winPct, lossPct     float64
	}{
		{"lions", 6, 2, 2, 60.0, 20.0},
		{"wolves without matches", 0, 0, 0, 0.0, 0.0},
		{"only draws", 0, 5, 0, 0.0, 0.0},
		{"only wins", 3, 0, 0, 100.0, 0.0},
		{"only losses", 0, 0, 4, 0.0, 100.0},
		{"thirds", 1, 1, 1, 100.0 / 3, 100.0 / 3},
		{"max int wins", math.MaxInt, 1, 0, 100.0, 0.0},
		{"max int losses", 0, 0, math.MaxInt, 0.0, 100.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			win, loss := RecomputeProbabilities(tc.wins, tc.draws, tc.losses)
			assert.InDelta(t, tc.winPct, win, 1e-9)
			assert.InDelta(t, tc.lossPct, loss, 1e-9)
		})
	}
}

func TestRecomputeProbabilitiesFormula(t *testing.T) {
	for w := 0; w <= 6; w++ {
		for d := 0; d <= 6; d++ {
			for l := 0; l <= 6; l++ {
				win, loss := RecomputeProbabilities(w, d, l)
				total := w + d + l
				if total == 0 {
					assert.Zero(t, win)
					assert.Zero(t, loss)
					continue
				}
				assert.InDelta(t, 100*float64(w)/float64(total), win, 1e-9)
				assert.InDelta(t, 100*float64(l)/float64(total), loss, 1e-9)
				assert.GreaterOrEqual(t, win, 0.0)
				assert.LessOrEqual(t, win+loss, 100.0+1e-9)
			}
		}
	}
}

func TestStatisticRecomputeIsIdempotent(t *testing.T) {
	s := Statistic{MatchRecord: MatchRecord{Wins: 7, Draws: 3, Losses: 5}}

	s.Recompute()
	win, loss := s.WinProbability, s.LossProbability
	s.Recompute()

	assert.Equal(t, win, s.WinProbability)
	assert.Equal(t, loss, s.LossProbability)
	assert.Equal(t, 15, s.Played())
}

func TestStatisticRecomputeOverwritesStaleValues(t *testing.T) {
	s := Statistic{
		MatchRecord:     MatchRecord{Wins: 6, Draws: 2, Losses: 2},
		WinProbability:  99,
		LossProbability: 99,
	}
	s.Recompute()

	assert.InDelta(t, 60.0, s.WinProbability, 1e-9)
	assert.InDelta(t, 20.0, s.LossProbability, 1e-9)
}

func TestStatisticString(t *testing.T) {
	s := Statistic{
		Team:        &Team{Name: "Lions"},
		MatchRecord: MatchRecord{Wins: 6, Draws: 2, Losses: 2},
	}
	s.Recompute()

	assert.Equal(t, "Equipo Lions - Prob. Ganar: 60.00%, Prob. Perder: 20.00%", s.String())
	assert.Equal(t, "", Statistic{}.TeamName())
}
