package wsh

import (
	"errors"
	"net/http"
	"strconv"

	"sports-stats/internal/pagination"
	"sports-stats/internal/report"
	tmH "sports-stats/internal/teamHandlers"

	"github.com/gin-gonic/gin"
)

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Estadísticas Deportivas"})
}

func (s *Server) listTeams(c *gin.Context) {
	res, err := s.teams.PageTeams(pagination.ParsePage(c.Query("page")), teamsPerPage)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.HTML(http.StatusOK, "equipos.html", gin.H{
		"Title":      "Equipos",
		"Teams":      res.Items,
		"Pagination": res.Page,
		"PagePath":   "/equipos",
	})
}

func (s *Server) listPlayers(c *gin.Context) {
	res, err := s.players.PagePlayers(pagination.ParsePage(c.Query("page")), playersPerPage)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.HTML(http.StatusOK, "jugadores.html", gin.H{
		"Title":      "Jugadores",
		"Players":    res.Items,
		"Pagination": res.Page,
		"PagePath":   "/jugadores",
	})
}

func (s *Server) listStatistics(c *gin.Context) {
	stats, err := s.stats.ListStatistics()
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.HTML(http.StatusOK, "estadisticas.html", gin.H{
		"Title":      "Estadísticas",
		"Statistics": stats,
	})
}

// showTeam показывает команду с игроками. Неизвестная команда — страница
// ошибки с кодом 200.
func (s *Server) showTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.renderError(c, http.StatusOK, "Equipo no encontrado.")
		return
	}

	team, err := s.teams.GetTeamWithPlayers(teamID)
	if errors.Is(err, tmH.ErrTeamNotFound) {
		s.renderError(c, http.StatusOK, "Equipo no encontrado.")
		return
	} else if err != nil {
		s.internalError(c, err)
		return
	}

	c.HTML(http.StatusOK, "equipo_jugador.html", gin.H{
		"Title": team.Name,
		"Team":  team,
	})
}

func (s *Server) generatePDF(c *gin.Context) {
	stats, err := s.stats.ListStatistics()
	if err != nil {
		s.internalError(c, err)
		return
	}

	data, err := report.Generate(stats, report.Options{GeneratedAt: s.now()})
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename="+report.FileName)
	c.Data(http.StatusOK, "application/pdf", data)
}
