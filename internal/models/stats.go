package models

import (
	"fmt"
	"time"
)

// Statistic — агрегированная статистика команды. WinProbability и
// LossProbability производные: их выставляет только Recompute.
type Statistic struct {
	ID     int   `gorm:"primaryKey"`
	TeamID int   `gorm:"not null;index"`
	Team   *Team `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	MatchRecord `gorm:"embedded"`

	Goals         int `gorm:"not null;default:0"`
	ShotsOnTarget int `gorm:"not null;default:0"`
	Assists       int `gorm:"not null;default:0"`
	YellowCards   int `gorm:"not null;default:0"`
	RedCards      int `gorm:"not null;default:0"`

	WinProbability  float64 `gorm:"not null;default:0"`
	LossProbability float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Statistic) TableName() string { return "statistic" }

// Recompute пересчитывает производные поля из счётчиков матчей.
func (s *Statistic) Recompute() {
	s.WinProbability, s.LossProbability = RecomputeProbabilities(s.Wins, s.Draws, s.Losses)
}

func (s Statistic) TeamName() string {
	if s.Team == nil {
		return ""
	}
	return s.Team.Name
}

func (s Statistic) String() string {
	return fmt.Sprintf("Equipo %s - Prob. Ganar: %.2f%%, Prob. Perder: %.2f%%",
		s.TeamName(), s.WinProbability, s.LossProbability)
}
