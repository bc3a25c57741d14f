package views

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// NewEngine returns the page template engine backed by the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("date", func(t time.Time) string {
		return t.Format("2006-01-02")
	})
	return engine
}
