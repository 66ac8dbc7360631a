package mapwidget

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"showtime-finder-cli/model"
)

var (
	centerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5")).Bold(true)
)

// Marker is a cinema's position on the plotted grid.
type Marker struct {
	Cinema model.CinemaLocation
	Label  string
	Row    int
	Col    int
}

// Project places cinemas on a width×height grid around center. The grid is
// scaled so the farthest cinema still fits.
func Project(center model.LatLng, cinemas []model.CinemaLocation, width, height int) []Marker {
	if width < 3 || height < 3 {
		return nil
	}
	cosLat := math.Cos(center.Lat * math.Pi / 180)
	spanX, spanY := 0.0, 0.0
	for _, cinema := range cinemas {
		spanX = math.Max(spanX, math.Abs((cinema.Longitude-center.Lng)*cosLat))
		spanY = math.Max(spanY, math.Abs(cinema.Latitude-center.Lat))
	}
	if spanX == 0 {
		spanX = 0.01
	}
	if spanY == 0 {
		spanY = 0.01
	}

	midRow, midCol := height/2, width/2
	markers := make([]Marker, 0, len(cinemas))
	for i, cinema := range cinemas {
		dx := (cinema.Longitude - center.Lng) * cosLat / spanX
		dy := (cinema.Latitude - center.Lat) / spanY
		col := midCol + int(math.Round(dx*float64(midCol-1)))
		row := midRow - int(math.Round(dy*float64(midRow-1)))
		markers = append(markers, Marker{Cinema: cinema, Label: markerLabel(i), Row: row, Col: col})
	}
	return markers
}

// Plot renders the grid with the focused cinema highlighted, followed by a
// legend.
func Plot(center model.LatLng, cinemas []model.CinemaLocation, focusedID string, width, height int) string {
	markers := Project(center, cinemas, width, height)
	if len(markers) == 0 {
		return "No cinemas in this city."
	}

	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	grid[height/2][width/2] = centerStyle.Render("+")
	for _, m := range markers {
		style := markerStyle
		if m.Cinema.ID == focusedID {
			style = focusStyle
		}
		grid[m.Row][m.Col] = style.Render(m.Label)
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteByte('\n')
	}
	for _, m := range markers {
		prefix := "  "
		if m.Cinema.ID == focusedID {
			prefix = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s (%.1f km)\n", prefix, m.Label, m.Cinema.Name, m.Cinema.DistanceFromCenterKm))
	}
	return strings.TrimRight(b.String(), "\n")
}

func markerLabel(i int) string {
	const labels = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if i < len(labels) {
		return string(labels[i])
	}
	return "*"
}
