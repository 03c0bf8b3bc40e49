package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title      string
	Heading    string
	Subheading string
	CTALabel   string
	CTAURL     string
}

type submissionReceivedEmailData struct {
	baseEmailData
	LocationName string
}

type locationApprovedEmailData struct {
	baseEmailData
	LocationName string
}

type locationRejectedEmailData struct {
	baseEmailData
	LocationName string
	Reason       string
}

type adminNewSubmissionEmailData struct {
	baseEmailData
	LocationName string
	Category     string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}

	return buf.String(), nil
}
