package wsh

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type TeamStatistics struct {
	ID              int     `json:"id"`
	Team            string  `json:"team"`
	Games           int     `json:"games"`
	Wins            int     `json:"wins"`
	Draws           int     `json:"draws"`
	Losses          int     `json:"losses"`
	Goals           int     `json:"goals"`
	ShotsOnTarget   int     `json:"shots_on_target"`
	Assists         int     `json:"assists"`
	YellowCards     int     `json:"yellow_cards"`
	RedCards        int     `json:"red_cards"`
	WinProbability  float64 `json:"win_probability"`
	LossProbability float64 `json:"loss_probability"`
}

func (s *Server) apiStatistics(c *gin.Context) {
	stats, err := s.stats.ListStatistics()
	if err != nil {
		s.log.WithError(err).Error("Ошибка при получении статистики команд")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error al obtener las estadísticas"})
		return
	}

	results := make([]TeamStatistics, 0, len(stats))
	for _, st := range stats {
		results = append(results, TeamStatistics{
			ID:              st.ID,
			Team:            st.TeamName(),
			Games:           st.Played(),
			Wins:            st.Wins,
			Draws:           st.Draws,
			Losses:          st.Losses,
			Goals:           st.Goals,
			ShotsOnTarget:   st.ShotsOnTarget,
			Assists:         st.Assists,
			YellowCards:     st.YellowCards,
			RedCards:        st.RedCards,
			WinProbability:  st.WinProbability,
			LossProbability: st.LossProbability,
		})
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": s.now().UTC().Format(time.RFC3339)})
}
