package wsh

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"sports-stats/internal/models"
	plH "sports-stats/internal/playerHandlers"
	stH "sports-stats/internal/statsHandlers"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	msgRequired    = "Este campo es obligatorio."
	msgNotNumber   = "Debe ser un número entero mayor o igual a 0."
	msgOutOfRange  = "Valor fuera de rango."
	msgTooLarge    = "El valor debe ser como máximo %d."
	msgTooLong     = "Como máximo %s caracteres."
	msgInvalid     = "Valor no válido."
	msgBadChoice   = "Selección no válida."
	msgNameTaken   = "Ya existe un equipo con ese nombre."
	msgFixErrors   = "Corrija los errores del formulario."
	msgInvalidForm = "No se pudo leer el formulario."
)

// formErrors — сообщения по имени поля. Ключ "" — ошибка всей формы.
type formErrors map[string]string

// Счётчики принимаются строками: тег number пропускает только цифры, так что
// отрицательные и нечисловые значения отсекаются валидатором.
type teamForm struct {
	Name string `form:"name" binding:"required,max=100"`
}

type playerForm struct {
	Name   string `form:"name" binding:"required,max=100"`
	Number string `form:"number" binding:"required,number"`
	TeamID string `form:"team_id" binding:"required,number"`
}

type statisticForm struct {
	TeamID        string `form:"team_id" binding:"required,number"`
	Wins          string `form:"wins" binding:"required,number"`
	Draws         string `form:"draws" binding:"required,number"`
	Losses        string `form:"losses" binding:"required,number"`
	Goals         string `form:"goals" binding:"required,number"`
	ShotsOnTarget string `form:"shots_on_target" binding:"required,number"`
	Assists       string `form:"assists" binding:"required,number"`
	YellowCards   string `form:"yellow_cards" binding:"required,number"`
	RedCards      string `form:"red_cards" binding:"required,number"`
}

func (f teamForm) name(errs formErrors) string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = msgRequired
	}
	return name
}

func (f playerForm) input(errs formErrors) plH.PlayerInput {
	in := plH.PlayerInput{
		Name:   strings.TrimSpace(f.Name),
		Number: counterField(errs, "number", f.Number),
		TeamID: atoiField(errs, "team_id", f.TeamID),
	}
	if in.Name == "" {
		errs["name"] = msgRequired
	}
	return in
}

func (f statisticForm) input(errs formErrors) stH.StatisticInput {
	return stH.StatisticInput{
		TeamID:        atoiField(errs, "team_id", f.TeamID),
		Wins:          counterField(errs, "wins", f.Wins),
		Draws:         counterField(errs, "draws", f.Draws),
		Losses:        counterField(errs, "losses", f.Losses),
		Goals:         counterField(errs, "goals", f.Goals),
		ShotsOnTarget: counterField(errs, "shots_on_target", f.ShotsOnTarget),
		Assists:       counterField(errs, "assists", f.Assists),
		YellowCards:   counterField(errs, "yellow_cards", f.YellowCards),
		RedCards:      counterField(errs, "red_cards", f.RedCards),
	}
}

func atoiField(errs formErrors, name, raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs[name] = msgOutOfRange
	}
	return n
}

// maxCounter — верхняя граница счётчиков статистики и номера игрока.
const maxCounter = 1_000_000

func counterField(errs formErrors, name, raw string) int {
	n := atoiField(errs, name, raw)
	if _, bad := errs[name]; !bad && n > maxCounter {
		errs[name] = fmt.Sprintf(msgTooLarge, maxCounter)
	}
	return n
}

var registerOnce sync.Once

// registerFormTagNames заставляет валидатор называть поля по тегу form,
// чтобы ошибки совпадали с именами полей в HTML.
func registerFormTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindForm разбирает тело формы и возвращает ошибки по полям.
func bindForm(c *gin.Context, form any) formErrors {
	errs := formErrors{}
	err := c.ShouldBindWith(form, binding.Form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs[""] = msgInvalidForm
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = fieldMessage(fe)
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "number":
		return msgNotNumber
	case "max":
		return fmt.Sprintf(msgTooLong, fe.Param())
	}
	return msgInvalid
}

type fieldSpec struct {
	Name  string
	Label string
	Type  string
}

type choice struct {
	Value    string
	Label    string
	Selected bool
}

type formField struct {
	Name    string
	Label   string
	Type    string
	Value   string
	Error   string
	Choices []choice
}

var (
	teamFieldSpecs = []fieldSpec{
		{"name", "Nombre", "text"},
	}
	playerFieldSpecs = []fieldSpec{
		{"name", "Nombre", "text"},
		{"number", "Número", "number"},
		{"team_id", "Equipo", "select"},
	}
	statisticFieldSpecs = []fieldSpec{
		{"team_id", "Equipo", "select"},
		{"wins", "Partidos Ganados", "number"},
		{"draws", "Partidos Empatados", "number"},
		{"losses", "Partidos Perdidos", "number"},
		{"goals", "Goles", "number"},
		{"shots_on_target", "Remates al Arco", "number"},
		{"assists", "Asistencia", "number"},
		{"yellow_cards", "Tarjetas Amarillas", "number"},
		{"red_cards", "Tarjetas Rojas", "number"},
	}
)

// buildFields собирает поля формы. Варианты выбора команды строятся из teams,
// которые загружаются заново при каждом показе формы.
func buildFields(specs []fieldSpec, values map[string]string, errs formErrors, teams []models.Team) []formField {
	fields := make([]formField, 0, len(specs))
	for _, spec := range specs {
		f := formField{
			Name:  spec.Name,
			Label: spec.Label,
			Type:  spec.Type,
			Value: values[spec.Name],
			Error: errs[spec.Name],
		}
		if spec.Type == "select" {
			for _, t := range teams {
				v := strconv.Itoa(t.ID)
				f.Choices = append(f.Choices, choice{Value: v, Label: t.Name, Selected: v == f.Value})
			}
		}
		fields = append(fields, f)
	}
	return fields
}

func postedValues(c *gin.Context, specs []fieldSpec) map[string]string {
	values := make(map[string]string, len(specs))
	for _, spec := range specs {
		values[spec.Name] = c.PostForm(spec.Name)
	}
	return values
}

func playerValues(p *models.Player) map[string]string {
	return map[string]string{
		"name":    p.Name,
		"number":  strconv.Itoa(p.Number),
		"team_id": strconv.Itoa(p.TeamID),
	}
}

func statisticValues(s *models.Statistic) map[string]string {
	return map[string]string{
		"team_id":         strconv.Itoa(s.TeamID),
		"wins":            strconv.Itoa(s.Wins),
		"draws":           strconv.Itoa(s.Draws),
		"losses":          strconv.Itoa(s.Losses),
		"goals":           strconv.Itoa(s.Goals),
		"shots_on_target": strconv.Itoa(s.ShotsOnTarget),
		"assists":         strconv.Itoa(s.Assists),
		"yellow_cards":    strconv.Itoa(s.YellowCards),
		"red_cards":       strconv.Itoa(s.RedCards),
	}
}
