package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"sports-stats/internal/models"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4.5 * vg.Inch
	// vg.Length измеряется в пунктах.
	barWidth = vg.Length(12)
	// Подписи команд повёрнуты на 10 градусов.
	labelRotation = 10 * math.Pi / 180
)

// Series — данные для столбчатой диаграммы: по одной категории на команду.
type Series struct {
	Teams  []string
	Wins   []float64
	Draws  []float64
	Losses []float64
}

func BuildSeries(stats []models.Statistic) Series {
	s := Series{
		Teams:  make([]string, 0, len(stats)),
		Wins:   make([]float64, 0, len(stats)),
		Draws:  make([]float64, 0, len(stats)),
		Losses: make([]float64, 0, len(stats)),
	}
	for _, st := range stats {
		s.Teams = append(s.Teams, st.TeamName())
		s.Wins = append(s.Wins, float64(st.Wins))
		s.Draws = append(s.Draws, float64(st.Draws))
		s.Losses = append(s.Losses, float64(st.Losses))
	}
	return s
}

var seriesColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
}

// RenderChart рисует сгруппированную диаграмму (победы, ничьи, поражения) в PNG.
func RenderChart(s Series) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Estadísticas de Partidos"
	p.X.Label.Text = "Equipos"
	p.Y.Label.Text = "Cantidad de Partidos"
	p.Y.Min = 0
	p.Legend.Top = true

	if len(s.Teams) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Max = 1
	} else {
		groups := []struct {
			label  string
			values []float64
		}{
			{"Partidos Ganados", s.Wins},
			{"Partidos Empatados", s.Draws},
			{"Partidos Perdidos", s.Losses},
		}
		for i, g := range groups {
			bars, err := plotter.NewBarChart(plotter.Values(g.values), barWidth)
			if err != nil {
				return nil, fmt.Errorf("bar chart %q: %w", g.label, err)
			}
			bars.LineStyle.Width = vg.Length(0)
			bars.Color = seriesColors[i]
			bars.Offset = vg.Length(i-1) * barWidth
			p.Add(bars)
			p.Legend.Add(g.label, bars)
		}
		p.NominalX(s.Teams...)
		p.X.Tick.Label.Rotation = labelRotation
		p.X.Tick.Label.XAlign = draw.XRight
	}

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("chart writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
