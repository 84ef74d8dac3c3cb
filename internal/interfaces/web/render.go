package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

// placeholderLogoURL stands in whenever no badge could be resolved for a
// team.
const placeholderLogoURL = "https://placehold.co/64x64.png"

func NewRender() *render.Render {
	return render.New(render.Options{
		Directory:  "templates",
		Layout:     "layout",
		Extensions: []string{".html"},
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"kickoff": kickoffFormatter,
				"logo":    logoFormatter,
				"minute":  minuteFormatter,
			},
		},
	})
}

func kickoffFormatter(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("Mon, 02 Jan 2006 15:04 MST")
}

func logoFormatter(url string) string {
	if url == "" {
		return placeholderLogoURL
	}
	return url
}

// minuteFormatter renders a goal minute; providers sometimes omit it.
func minuteFormatter(minute *int) string {
	if minute == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d'", *minute)
}
