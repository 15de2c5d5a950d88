package bot

import (
	"fmt"
	"strings"

	"sports-stats/internal/models"
)

const startMessage = `¡Bienvenido!
Comandos disponibles:
/teams - Lista de equipos
/players <equipo> - Jugadores de un equipo
/stats - Estadísticas de los equipos
/start - Mostrar esta ayuda

Para administradores:
/report - Informe PDF de estadísticas`

func FormatTeams(teams []models.Team) string {
	if len(teams) == 0 {
		return "No hay equipos registrados."
	}
	var sb strings.Builder
	sb.WriteString("Equipos:")
	for i, t := range teams {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, t.Name)
	}
	return sb.String()
}

// FormatPlayers ожидает команду с загруженными игроками.
func FormatPlayers(team *models.Team) string {
	if len(team.Players) == 0 {
		return fmt.Sprintf("El equipo %s no tiene jugadores.", team.Name)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Jugadores de %s:", team.Name)
	for _, p := range team.Players {
		fmt.Fprintf(&sb, "\n#%d %s", p.Number, p.Name)
	}
	return sb.String()
}

func FormatStatistics(stats []models.Statistic) string {
	if len(stats) == 0 {
		return "No hay estadísticas."
	}
	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("%s (PG %d, PE %d, PP %d)", s.String(), s.Wins, s.Draws, s.Losses))
	}
	return strings.Join(lines, "\n")
}
