package training

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// CategoryBoth marca artículos que aplican a perros y gatos.
const CategoryBoth = "Both"

type Article struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Category    string     `json:"category" yaml:"category"` // Dogs | Cats | Both
	Difficulty  string     `json:"difficulty" yaml:"difficulty"`
	ReadMinutes int        `json:"read_minutes" yaml:"read_minutes"`
	Image       string     `json:"image" yaml:"image"`
	Excerpt     string     `json:"excerpt" yaml:"excerpt"`
	Author      string     `json:"author" yaml:"author"`
	PublishedOn civil.Date `json:"published_on" yaml:"published_on"`
}

type Video struct {
	ID              string `json:"id" yaml:"id"`
	Title           string `json:"title" yaml:"title"`
	Category        string `json:"category" yaml:"category"`
	DurationSeconds int    `json:"duration_seconds" yaml:"duration_seconds"`
	Views           int    `json:"views" yaml:"views"`
	Thumbnail       string `json:"thumbnail" yaml:"thumbnail"`
}

// Duration formatea la duración como m:ss.
func (v Video) Duration() string {
	return fmt.Sprintf("%d:%02d", v.DurationSeconds/60, v.DurationSeconds%60)
}

// ViewsLabel abrevia las vistas: 125000 -> "125K".
func (v Video) ViewsLabel() string {
	switch {
	case v.Views >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v.Views)/1_000_000)
	case v.Views >= 1_000:
		return fmt.Sprintf("%dK", v.Views/1_000)
	default:
		return fmt.Sprintf("%d", v.Views)
	}
}
