package teamhandlers

import (
	"errors"
	"fmt"
	"strings"

	"sports-stats/internal/models"
	"sports-stats/internal/pagination"

	"gorm.io/gorm"
)

var (
	ErrTeamNotFound  = errors.New("equipo no encontrado")
	ErrTeamNameTaken = errors.New("ya existe un equipo con ese nombre")
	ErrTeamInUse     = errors.New("el equipo tiene jugadores o estadísticas asociadas")
)

type Handler struct {
	models.Handler
}

func byID(tx *gorm.DB) *gorm.DB { return tx.Order("id") }

// PageTeams возвращает страницу команд в порядке добавления.
func (h *Handler) PageTeams(page, perPage int) (*pagination.Result[models.Team], error) {
	return pagination.Paginate[models.Team](h.DB, page, perPage, byID)
}

func (h *Handler) ListTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := h.DB.Order("id").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (h *Handler) GetTeamByID(teamID int) (*models.Team, error) {
	var team models.Team
	err := h.DB.First(&team, teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get team %d: %w", teamID, err)
	}
	return &team, nil
}

// GetTeamWithPlayers загружает команду вместе с её игроками.
func (h *Handler) GetTeamWithPlayers(teamID int) (*models.Team, error) {
	var team models.Team
	err := h.DB.Preload("Players", byID).First(&team, teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get team %d: %w", teamID, err)
	}
	return &team, nil
}

func (h *Handler) GetTeamByName(name string) (*models.Team, error) {
	var team models.Team
	err := h.DB.Preload("Players", byID).Where("name = ?", strings.TrimSpace(name)).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get team %q: %w", name, err)
	}
	return &team, nil
}

// TeamExists проверяет, что teamID ссылается на существующую команду.
func (h *Handler) TeamExists(teamID int) (bool, error) {
	var count int64
	if err := h.DB.Model(&models.Team{}).Where("id = ?", teamID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check team %d: %w", teamID, err)
	}
	return count > 0, nil
}

func (h *Handler) CreateTeam(name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if err := h.ensureNameFree(name, 0); err != nil {
		return nil, err
	}

	team := models.Team{Name: name}
	if err := h.DB.Create(&team).Error; err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	return &team, nil
}

func (h *Handler) RenameTeam(teamID int, name string) (*models.Team, error) {
	team, err := h.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := h.ensureNameFree(name, teamID); err != nil {
		return nil, err
	}

	team.Name = name
	if err := h.DB.Save(team).Error; err != nil {
		return nil, fmt.Errorf("update team %d: %w", teamID, err)
	}
	return team, nil
}

// DeleteTeam удаляет команду. Команда с игроками или статистикой не удаляется.
func (h *Handler) DeleteTeam(teamID int) error {
	return h.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		err := tx.First(&team, teamID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		} else if err != nil {
			return fmt.Errorf("get team %d: %w", teamID, err)
		}

		var players, stats int64
		if err := tx.Model(&models.Player{}).Where("team_id = ?", teamID).Count(&players).Error; err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		if err := tx.Model(&models.Statistic{}).Where("team_id = ?", teamID).Count(&stats).Error; err != nil {
			return fmt.Errorf("count statistics: %w", err)
		}
		if players > 0 || stats > 0 {
			return ErrTeamInUse
		}

		if err := tx.Delete(&team).Error; err != nil {
			return fmt.Errorf("delete team %d: %w", teamID, err)
		}
		return nil
	})
}

func (h *Handler) ensureNameFree(name string, exceptID int) error {
	var count int64
	q := h.DB.Model(&models.Team{}).Where("name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("check team name: %w", err)
	}
	if count > 0 {
		return ErrTeamNameTaken
	}
	return nil
}
