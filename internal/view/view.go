// Package view renders the dashboard's server-side HTML screens.
// Templates are embedded at build time; every screen shares one layout.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Screen names accepted by Render.
const (
	ScreenLogin        = "login"
	ScreenSignup       = "signup"
	ScreenHome         = "home"
	ScreenDomainCheck  = "domain_check"
	ScreenEmailCheck   = "email_check"
	ScreenProfile      = "profile"
	ScreenAdminUsers   = "admin_users"
	ScreenAdminDomains = "admin_domains"
	ScreenAdminMetrics = "admin_metrics"
	ScreenNotFound     = "not_found"
)

var screens = []string{
	ScreenLogin,
	ScreenSignup,
	ScreenHome,
	ScreenDomainCheck,
	ScreenEmailCheck,
	ScreenProfile,
	ScreenAdminUsers,
	ScreenAdminDomains,
	ScreenAdminMetrics,
	ScreenNotFound,
}

// Renderer holds the parsed screen templates.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses all embedded screens against the shared layout.
func New() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(screens))
	for _, screen := range screens {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+screen+".html")
		if err != nil {
			return nil, fmt.Errorf("parse screen %s: %w", screen, err)
		}
		templates[screen] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render writes a screen to w with the given data.
func (r *Renderer) Render(w io.Writer, screen string, data any) error {
	tmpl, ok := r.templates[screen]
	if !ok {
		return fmt.Errorf("unknown screen %q", screen)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
