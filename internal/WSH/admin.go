package wsh

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"sports-stats/internal/models"
	"sports-stats/internal/pagination"
	plH "sports-stats/internal/playerHandlers"
	stH "sports-stats/internal/statsHandlers"
	tmH "sports-stats/internal/teamHandlers"

	"github.com/gin-gonic/gin"
)

const (
	msgRecordNotFound = "Registro no encontrado."
	msgTeamInUse      = "No se puede eliminar el equipo: tiene jugadores o estadísticas asociadas."
)

type adminView struct {
	Title string
	Path  string
}

var (
	teamView      = adminView{Title: "Equipos", Path: "/admin/equipos"}
	playerView    = adminView{Title: "Jugadores", Path: "/admin/jugadores"}
	statisticView = adminView{Title: "Estadísticas", Path: "/admin/estadisticas"}
)

// column — колонка списка в админке.
type column[T any] struct {
	Label string
	Value func(T) string
}

type adminRow struct {
	ID    int
	Cells []string
}

var teamColumns = []column[models.Team]{
	{"ID", func(t models.Team) string { return strconv.Itoa(t.ID) }},
	{"Nombre", func(t models.Team) string { return t.Name }},
}

var playerColumns = []column[models.Player]{
	{"ID", func(p models.Player) string { return strconv.Itoa(p.ID) }},
	{"Nombre", func(p models.Player) string { return p.Name }},
	{"Número", func(p models.Player) string { return strconv.Itoa(p.Number) }},
	{"Equipo", func(p models.Player) string {
		if p.Team == nil {
			return ""
		}
		return p.Team.Name
	}},
}

func count(n int) string { return strconv.Itoa(n) }

func percent(v float64) string { return fmt.Sprintf("%.2f%%", v) }

var statisticColumns = []column[models.Statistic]{
	{"ID", func(s models.Statistic) string { return count(s.ID) }},
	{"Equipo", func(s models.Statistic) string { return s.TeamName() }},
	{"Partidos Ganados", func(s models.Statistic) string { return count(s.Wins) }},
	{"Partidos Empatados", func(s models.Statistic) string { return count(s.Draws) }},
	{"Partidos Perdidos", func(s models.Statistic) string { return count(s.Losses) }},
	{"Goles", func(s models.Statistic) string { return count(s.Goals) }},
	{"Remates al Arco", func(s models.Statistic) string { return count(s.ShotsOnTarget) }},
	{"Asistencia", func(s models.Statistic) string { return count(s.Assists) }},
	{"Tarjetas Amarillas", func(s models.Statistic) string { return count(s.YellowCards) }},
	{"Tarjetas Rojas", func(s models.Statistic) string { return count(s.RedCards) }},
	{"Probabilidad Ganar", func(s models.Statistic) string { return percent(s.WinProbability) }},
	{"Probabilidad Perder", func(s models.Statistic) string { return percent(s.LossProbability) }},
}

func buildRows[T any](items []T, id func(T) int, cols []column[T]) ([]string, []adminRow) {
	labels := make([]string, 0, len(cols))
	for _, col := range cols {
		labels = append(labels, col.Label)
	}
	rows := make([]adminRow, 0, len(items))
	for _, item := range items {
		row := adminRow{ID: id(item), Cells: make([]string, 0, len(cols))}
		for _, col := range cols {
			row.Cells = append(row.Cells, col.Value(item))
		}
		rows = append(rows, row)
	}
	return labels, rows
}

func (s *Server) registerAdmin(g *gin.RouterGroup) {
	g.GET("", s.adminIndex)

	g.GET("/equipos", s.adminTeams)
	g.GET("/equipos/nuevo", s.adminTeamForm)
	g.POST("/equipos/nuevo", s.adminTeamSave)
	g.GET("/equipos/:id/editar", s.adminTeamForm)
	g.POST("/equipos/:id/editar", s.adminTeamSave)
	g.POST("/equipos/:id/eliminar", s.adminTeamDelete)

	g.GET("/jugadores", s.adminPlayers)
	g.GET("/jugadores/nuevo", s.adminPlayerForm)
	g.POST("/jugadores/nuevo", s.adminPlayerSave)
	g.GET("/jugadores/:id/editar", s.adminPlayerForm)
	g.POST("/jugadores/:id/editar", s.adminPlayerSave)
	g.POST("/jugadores/:id/eliminar", s.adminPlayerDelete)

	g.GET("/estadisticas", s.adminStatistics)
	g.GET("/estadisticas/nuevo", s.adminStatisticForm)
	g.POST("/estadisticas/nuevo", s.adminStatisticSave)
	g.GET("/estadisticas/:id/editar", s.adminStatisticForm)
	g.POST("/estadisticas/:id/editar", s.adminStatisticSave)
	g.POST("/estadisticas/:id/eliminar", s.adminStatisticDelete)
}

func (s *Server) adminIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_index.html", gin.H{
		"Title": "Admin",
		"Views": []adminView{teamView, playerView, statisticView},
	})
}

// adminTarget разбирает :id. Без :id форма создаёт новую запись.
func (s *Server) adminTarget(c *gin.Context) (id int, isNew, ok bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, true, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		s.renderError(c, http.StatusNotFound, msgRecordNotFound)
		return 0, false, false
	}
	return id, false, true
}

func (s *Server) renderList(c *gin.Context, view adminView, labels []string, rows []adminRow, page pagination.Page, msg string) {
	c.HTML(http.StatusOK, "admin_list.html", gin.H{
		"Title":      view.Title,
		"View":       view,
		"Columns":    labels,
		"Rows":       rows,
		"Pagination": page,
		"PagePath":   view.Path,
		"Error":      msg,
	})
}

func (s *Server) renderForm(c *gin.Context, view adminView, id int, isNew bool, fields []formField, errs formErrors) {
	action := view.Path + "/nuevo"
	if !isNew {
		action = fmt.Sprintf("%s/%d/editar", view.Path, id)
	}

	msg := errs[""]
	if msg == "" && len(errs) > 0 {
		msg = msgFixErrors
	}

	c.HTML(http.StatusOK, "admin_form.html", gin.H{
		"Title":  view.Title,
		"View":   view,
		"Action": action,
		"IsNew":  isNew,
		"Fields": fields,
		"Error":  msg,
	})
}

// checkTeamChoice отмечает поле team_id, если команда не существует.
// Возвращает false при ошибке базы (ответ уже отправлен).
func (s *Server) checkTeamChoice(c *gin.Context, teamID int, errs formErrors) bool {
	if _, bad := errs["team_id"]; bad {
		return true
	}
	exists, err := s.teams.TeamExists(teamID)
	if err != nil {
		s.internalError(c, err)
		return false
	}
	if !exists {
		errs["team_id"] = msgBadChoice
	}
	return true
}

// Команды

func (s *Server) adminTeams(c *gin.Context) {
	s.renderTeamList(c, "")
}

func (s *Server) renderTeamList(c *gin.Context, msg string) {
	res, err := s.teams.PageTeams(pagination.ParsePage(c.Query("page")), adminPerPage)
	if err != nil {
		s.internalError(c, err)
		return
	}
	labels, rows := buildRows(res.Items, func(t models.Team) int { return t.ID }, teamColumns)
	s.renderList(c, teamView, labels, rows, res.Page, msg)
}

func (s *Server) adminTeamForm(c *gin.Context) {
	id, isNew, ok := s.adminTarget(c)
	if !ok {
		return
	}

	values := map[string]string{}
	if !isNew {
		team, err := s.teams.GetTeamByID(id)
		if errors.Is(err, tmH.ErrTeamNotFound) {
			s.renderError(c, http.StatusNotFound, msgRecordNotFound)
			return
		} else if err != nil {
			s.internalError(c, err)
			return
		}
		values["name"] = team.Name
	}
	s.renderForm(c, teamView, id, isNew, buildFields(teamFieldSpecs, values, nil, nil), nil)
}

func (s *Server) adminTeamSave(c *gin.Context) {
	id, isNew, ok := s.adminTarget(c)
	if !ok {
		return
	}

	var form teamForm
	errs := bindForm(c, &form)
	if len(errs) == 0 {
		name := form.name(errs)
		if len(errs) == 0 {
			var err error
			if isNew {
				_, err = s.teams.CreateTeam(name)
			} else {
				_, err = s.teams.RenameTeam(id, name)
			}
			switch {
			case err == nil:
				c.Redirect(http.StatusSeeOther, teamView.Path)
				return
			case errors.Is(err, tmH.ErrTeamNameTaken):
				errs["name"] = msgNameTaken
			case errors.Is(err, tmH.ErrTeamNotFound):
				s.renderError(c, http.StatusNotFound, msgRecordNotFound)
				return
			default:
				s.internalError(c, err)
				return
			}
		}
	}

	fields := buildFields(teamFieldSpecs, postedValues(c, teamFieldSpecs), errs, nil)
	s.renderForm(c, teamView, id, isNew, fields, errs)
}

func (s *Server) adminTeamDelete(c *gin.Context) {
	id, isNew, ok := s.adminTarget(c)
	if !ok || isNew {
		return
	}

	err := s.teams.DeleteTeam(id)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, teamView.Path)
	case errors.Is(err, tmH.ErrTeamInUse):
		s.renderTeamList(c, msgTeamInUse)
	case errors.Is(err, tmH.ErrTeamNotFound):
		s.renderError(c, http.StatusNotFound, msgRecordNotFound)
	default:
		s.internalError(c, err)
	}
}

// Игроки

func (s *Server) adminPlayers(c *gin.Context) {
	res, err := s.players.PagePlayers(pagination.ParsePage(c.Query("page")), adminPerPage)
	if err != nil {
		s.internalError(c, err)
		return
	}
	labels, rows := buildRows(res.Items, func(p models.Player) int { return p.ID }, playerColumns)
	s.renderList(c, playerView, labels, rows, res.Page, "")
}

func (s *Server) adminPlayerForm(c *gin.Context) {
	id, isNew, ok := s.adminTarget(c)
	if !ok {
		return
	}

	values := map[string]string{}
	if !isNew {
		player, err := s.players.GetPlayerByID(id)
		if errors.Is(err, plH.ErrPlayerNotFound) {
			s.renderError(c, http.StatusNotFound, msgRecordNotFound)
			return
		} else if err != nil {
			s.internalError(c, err)
			return
		}
		values = playerValues(player)
	}
	s.renderEntityForm(c, playerView, playerFieldSpecs, id, isNew, values, nil)
}

func (s *Server) adminPlayerSave(c *gin.Context) {
	id, isNew, ok := s.adminTarget(c)
	if !ok {
		return
	}

	var form playerForm
	errs := bindForm(c, &form)
	if len(errs) == 0 {
		in := form.input(errs)
		if !s.checkTeamChoice(c, in.TeamID, errs) {
			return
		}
		if len(errs) == 0 {
			var err error
			if isNew {
				_, err = s.players.CreatePlayer(in)
			} else {
				_, err = s.players.UpdatePlayer(id, in)
			}
			switch {
			case err == nil:
				c.Redirect(http.StatusSeeOther, playerView.Path)
				return
			case errors.Is(err, plH.ErrPlayerNotFound):
				s.renderError(c, http.StatusNotFound, msgRecordNotFound)
				return
			default:
				s.internalError(c, err)
				return
			}
		}
	}

	s.renderEntityForm(c, playerView, playerFieldSpecs, id, isNew, postedValues(c, playerFieldSpecs), errs)
}

func (s *Server) adminPlayerDelete(c *gin.Context) {
	id, isNew, ok := s.adminTarget(c)
	if !ok || isNew {
		return
	}

	err := s.players.DeletePlayer(id)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, playerView.Path)
	case errors.Is(err, plH.ErrPlayerNotFound):
		s.renderError(c, http.StatusNotFound, msgRecordNotFound)
	default:
		s.internalError(c, err)
	}
}

// Статистика

func (s *Server) adminStatistics(c *gin.Context) {
	res, err := s.stats.PageStatistics(pagination.ParsePage(c.Query("page")), adminPerPage)
	if err != nil {
		s.internalError(c, err)
		return
	}
	labels, rows := buildRows(res.Items, func(st models.Statistic) int { return st.ID }, statisticColumns)
	s.renderList(c, statisticView, labels, rows, res.Page, "")
}

func (s *Server) adminStatisticForm(c *gin.Context) {
	id, isNew, ok := s.adminTarget(c)
	if !ok {
		return
	}

	values := map[string]string{}
	if !isNew {
		stat, err := s.stats.GetStatisticByID(id)
		if errors.Is(err, stH.ErrStatisticNotFound) {
			s.renderError(c, http.StatusNotFound, msgRecordNotFound)
			return
		} else if err != nil {
			s.internalError(c, err)
			return
		}
		values = statisticValues(stat)
	}
	s.renderEntityForm(c, statisticView, statisticFieldSpecs, id, isNew, values, nil)
}

func (s *Server) adminStatisticSave(c *gin.Context) {
	id, isNew, ok := s.adminTarget(c)
	if !ok {
		return
	}

	var form statisticForm
	errs := bindForm(c, &form)
	if len(errs) == 0 {
		in := form.input(errs)
		if !s.checkTeamChoice(c, in.TeamID, errs) {
			return
		}
		if len(errs) == 0 {
			var err error
			if isNew {
				_, err = s.stats.CreateStatistic(in)
			} else {
				_, err = s.stats.UpdateStatistic(id, in)
			}
			switch {
			case err == nil:
				c.Redirect(http.StatusSeeOther, statisticView.Path)
				return
			case errors.Is(err, stH.ErrStatisticNotFound):
				s.renderError(c, http.StatusNotFound, msgRecordNotFound)
				return
			default:
				s.internalError(c, err)
				return
			}
		}
	}

	s.renderEntityForm(c, statisticView, statisticFieldSpecs, id, isNew, postedValues(c, statisticFieldSpecs), errs)
}

func (s *Server) adminStatisticDelete(c *gin.Context) {
	id, isNew, ok := s.adminTarget(c)
	if !ok || isNew {
		return
	}

	err := s.stats.DeleteStatistic(id)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, statisticView.Path)
	case errors.Is(err, stH.ErrStatisticNotFound):
		s.renderError(c, http.StatusNotFound, msgRecordNotFound)
	default:
		s.internalError(c, err)
	}
}

// renderEntityForm показывает форму с выбором команды; список команд читается
// из базы на каждый запрос.
func (s *Server) renderEntityForm(c *gin.Context, view adminView, specs []fieldSpec, id int, isNew bool, values map[string]string, errs formErrors) {
	teams, err := s.teams.ListTeams()
	if err != nil {
		s.internalError(c, err)
		return
	}
	s.renderForm(c, view, id, isNew, buildFields(specs, values, errs, teams), errs)
}
