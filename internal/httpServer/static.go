package httpServer

import (
	"embed"
	"html/template"
)

//go:embed templates/*
var templateFiles embed.FS

var templates *template.Template

func init() {
	// Load templates from embedded filesystem
	var err error
	templates, err = template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		panic(err)
	}
}
