// Package render projects the document onto the two read surfaces: the
// public résumé page and the editor dashboard.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"cv-builder/internal/form"
	"cv-builder/internal/model"
	"cv-builder/internal/strength"
)

// PublicView drives the public résumé template. Sections absent or empty in
// the document are simply not rendered; the public page never substitutes
// sample content.
type PublicView struct {
	Doc *model.Document
	// Theme is empty for the default theme so the body attribute is omitted.
	Theme string
	Font  string
}

// DashboardView drives the editor template.
type DashboardView struct {
	Form  *form.View
	Score strength.Score
	// Saved toggles the auto-dismissing success notification.
	Saved bool
}

type Projector struct {
	tplDir string
}

func NewProjector(tplDir string) *Projector {
	return &Projector{tplDir: tplDir}
}

var funcs = template.FuncMap{
	// stripScheme shortens profile links for display ("github.com/johndoe").
	"stripScheme": func(u string) string {
		u = strings.TrimPrefix(u, "https://")
		return strings.TrimPrefix(u, "http://")
	},
	// safeURL marks stored image/file values (often data: URLs) as safe hrefs.
	"safeURL": func(v any) template.URL {
		switch s := v.(type) {
		case string:
			return template.URL(s)
		case *string:
			if s != nil {
				return template.URL(*s)
			}
		}
		return ""
	},
	"css": func(s string) template.CSS { return template.CSS(s) },
}

// PublicPage renders the one-shot public projection of the document.
func (p *Projector) PublicPage(doc *model.Document) (string, error) {
	view := PublicView{
		Doc:  doc,
		Font: doc.Design.Font,
	}
	if doc.Design.Theme != model.DefaultTheme {
		view.Theme = doc.Design.Theme
	}
	return p.execute("resume.html", view)
}

// Dashboard renders the editor form populated from the document.
func (p *Projector) Dashboard(doc *model.Document, saved bool) (string, error) {
	view := DashboardView{
		Form:  form.NewView(doc),
		Score: strength.Calculate(doc),
		Saved: saved,
	}
	return p.execute("dashboard.html", view)
}

// PrintablePage renders the public page with the stylesheet inlined so the
// result is self-contained for the PDF renderer.
func (p *Projector) PrintablePage(doc *model.Document) (string, error) {
	html, err := p.PublicPage(doc)
	if err != nil {
		return "", err
	}

	css, err := os.ReadFile(filepath.Join(p.tplDir, "style.css"))
	if err != nil {
		return "", fmt.Errorf("reading stylesheet: %w", err)
	}
	block := "<style>" + string(css) + "</style>"
	if strings.Contains(html, "<head>") {
		return strings.Replace(html, "<head>", "<head>"+block, 1), nil
	}
	return block + html, nil
}

func (p *Projector) execute(name string, view any) (string, error) {
	tpl, err := template.New(name).Funcs(funcs).ParseFiles(filepath.Join(p.tplDir, name))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
