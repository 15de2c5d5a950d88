package models

// MatchRecord — счётчики сыгранных матчей команды.
type MatchRecord struct {
	Wins   int `gorm:"not null;default:0"`
	Draws  int `gorm:"not null;default:0"`
	Losses int `gorm:"not null;default:0"`
}

func (m MatchRecord) Played() int {
	return m.Wins + m.Draws + m.Losses
}

// RecomputeProbabilities возвращает вероятности победы и поражения в процентах.
// Если матчей нет, обе равны нулю.
func RecomputeProbabilities(wins, draws, losses int) (winPct, lossPct float64) {
	// Сумма в float64: большие счётчики не должны переполнять int.
	total := float64(wins) + float64(draws) + float64(losses)
	if total == 0 {
		return 0.0, 0.0
	}
	winPct = float64(wins) / total * 100.0
	lossPct = float64(losses) / total * 100.0
	return winPct, lossPct
}
