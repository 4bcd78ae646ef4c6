// Package views embeds the HTML templates and static assets.
package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates static
var files embed.FS

// NewEngine builds the template engine over the embedded templates. Times are
// shown in loc.
func NewEngine(loc *time.Location) *html.Engine {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("clock", func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.In(loc).Format("15:04")
	})
	engine.AddFunc("datetime", func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.In(loc).Format("2006-01-02 15:04")
	})
	engine.AddFunc("money", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})
	return engine
}

// Static serves the files under static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
