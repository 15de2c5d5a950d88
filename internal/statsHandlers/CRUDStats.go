package statshandlers

import (
	"errors"
	"fmt"

	"sports-stats/internal/models"
	"sports-stats/internal/pagination"

	"gorm.io/gorm"
)

var ErrStatisticNotFound = errors.New("estadística no encontrada")

type Handler struct {
	models.Handler
}

// StatisticInput — счётчики, которые вводит администратор. Вероятностей
// здесь нет: они всегда считаются из Wins, Draws и Losses.
type StatisticInput struct {
	TeamID        int
	Wins          int
	Draws         int
	Losses        int
	Goals         int
	ShotsOnTarget int
	Assists       int
	YellowCards   int
	RedCards      int
}

func (in StatisticInput) apply(s *models.Statistic) {
	s.TeamID = in.TeamID
	s.Team = nil
	s.Wins = in.Wins
	s.Draws = in.Draws
	s.Losses = in.Losses
	s.Goals = in.Goals
	s.ShotsOnTarget = in.ShotsOnTarget
	s.Assists = in.Assists
	s.YellowCards = in.YellowCards
	s.RedCards = in.RedCards
}

func withTeam(tx *gorm.DB) *gorm.DB { return tx.Preload("Team").Order("id") }

// ListStatistics возвращает всю статистику с командами в порядке добавления.
func (h *Handler) ListStatistics() ([]models.Statistic, error) {
	var stats []models.Statistic
	if err := h.DB.Scopes(withTeam).Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}
	return stats, nil
}

func (h *Handler) PageStatistics(page, perPage int) (*pagination.Result[models.Statistic], error) {
	return pagination.Paginate[models.Statistic](h.DB, page, perPage, withTeam)
}

func (h *Handler) GetStatisticByID(statID int) (*models.Statistic, error) {
	var stat models.Statistic
	if err := h.DB.Preload("Team").First(&stat, statID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatisticNotFound
		}
		return nil, fmt.Errorf("get statistic %d: %w", statID, err)
	}
	return &stat, nil
}

// CreateStatistic сохраняет новую статистику, предварительно пересчитав
// вероятности.
func (h *Handler) CreateStatistic(in StatisticInput) (*models.Statistic, error) {
	var stat models.Statistic
	in.apply(&stat)
	stat.Recompute()

	if err := h.DB.Create(&stat).Error; err != nil {
		return nil, fmt.Errorf("create statistic: %w", err)
	}
	h.Log.WithField("statistic_id", stat.ID).Debugf("win=%.2f loss=%.2f", stat.WinProbability, stat.LossProbability)
	return &stat, nil
}

// UpdateStatistic перезаписывает счётчики и пересчитывает вероятности в той же
// транзакции, что и запись.
func (h *Handler) UpdateStatistic(statID int, in StatisticInput) (*models.Statistic, error) {
	var stat models.Statistic
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&stat, statID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStatisticNotFound
			}
			return fmt.Errorf("get statistic %d: %w", statID, err)
		}

		in.apply(&stat)
		stat.Recompute()

		if err := tx.Save(&stat).Error; err != nil {
			return fmt.Errorf("update statistic %d: %w", statID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	h.Log.WithField("statistic_id", stat.ID).Debugf("win=%.2f loss=%.2f", stat.WinProbability, stat.LossProbability)
	return &stat, nil
}

func (h *Handler) DeleteStatistic(statID int) error {
	res := h.DB.Delete(&models.Statistic{}, statID)
	if res.Error != nil {
		return fmt.Errorf("delete statistic %d: %w", statID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStatisticNotFound
	}
	return nil
}
