package playerhandlers

import (
	"errors"
	"fmt"
	"strings"

	"sports-stats/internal/models"
	"sports-stats/internal/pagination"

	"gorm.io/gorm"
)

var ErrPlayerNotFound = errors.New("jugador no encontrado")

type Handler struct {
	models.Handler
}

// PlayerInput — поля игрока, которые задаёт администратор.
type PlayerInput struct {
	Name   string
	Number int
	TeamID int
}

func withTeam(tx *gorm.DB) *gorm.DB { return tx.Preload("Team").Order("id") }

// PagePlayers возвращает страницу игроков вместе с их командами.
func (h *Handler) PagePlayers(page, perPage int) (*pagination.Result[models.Player], error) {
	return pagination.Paginate[models.Player](h.DB, page, perPage, withTeam)
}

func (h *Handler) ListPlayersByTeam(teamID int) ([]models.Player, error) {
	var players []models.Player
	if err := h.DB.Where("team_id = ?", teamID).Order("id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("list players of team %d: %w", teamID, err)
	}
	return players, nil
}

func (h *Handler) GetPlayerByID(playerID int) (*models.Player, error) {
	var player models.Player
	if err := h.DB.Preload("Team").First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get player %d: %w", playerID, err)
	}
	return &player, nil
}

func (h *Handler) CreatePlayer(in PlayerInput) (*models.Player, error) {
	player := models.Player{
		Name:   strings.TrimSpace(in.Name),
		Number: in.Number,
		TeamID: in.TeamID,
	}
	if err := h.DB.Create(&player).Error; err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	return &player, nil
}

func (h *Handler) UpdatePlayer(playerID int, in PlayerInput) (*models.Player, error) {
	var player models.Player
	if err := h.DB.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get player %d: %w", playerID, err)
	}

	player.Name = strings.TrimSpace(in.Name)
	player.Number = in.Number
	player.TeamID = in.TeamID
	player.Team = nil
	if err := h.DB.Save(&player).Error; err != nil {
		return nil, fmt.Errorf("update player %d: %w", playerID, err)
	}
	return &player, nil
}

func (h *Handler) DeletePlayer(playerID int) error {
	res := h.DB.Delete(&models.Player{}, playerID)
	if res.Error != nil {
		return fmt.Errorf("delete player %d: %w", playerID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
