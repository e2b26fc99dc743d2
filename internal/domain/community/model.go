package community

import (
	"fmt"
	"time"
)

const DefaultCategory = "Discussion"

// Categories son las opciones del formulario de nueva publicación.
var Categories = []string{"Discussion", "Advice", "Success Story", "Question", "General"}

type Post struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
	Views      int       `json:"views"`
	CreatedAt  time.Time `json:"created_at"`
}

// AgeLabel describe cuánto hace que se publicó, relativo a now.
func AgeLabel(created, now time.Time) string {
	mins := int(now.Sub(created) / time.Minute)
	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	case mins < 24*60:
		return fmt.Sprintf("%d hours ago", mins/60)
	default:
		return fmt.Sprintf("%d days ago", mins/(24*60))
	}
}
