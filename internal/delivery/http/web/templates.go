package web

import (
	"html/template"

	"go-contact-form/internal/domain"
)

// ContactFormTemplate is the template name rendered for the contact page
const ContactFormTemplate = "contact_form.html"

// ContactFormPage is the data handed to ContactFormTemplate
type ContactFormPage struct {
	ID   string
	View domain.View
}

// contactFormTemplate is the HTML template for the contact form page.
// Each error sits under its own input; each submitted value has its own
// element so it can be found by its text alone.
const contactFormTemplate = `{{define "contact_form.html"}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.View.Header}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .field { margin-bottom: 15px; }
        .field label { display: block; font-weight: bold; color: #555; }
        .field input, .field textarea { width: 100%; }
        .field [aria-invalid="true"] { border-color: #cc0000; }
        .error { color: #cc0000; margin: 5px 0 0; }
        .display { background: #f9f9f9; padding: 15px; border-left: 4px solid #0066cc; }
    </style>
</head>
<body>
    <div class="container">
        <form method="post" action="/contact/{{.ID}}" novalidate>
            <h1>{{.View.Header}}</h1>
            {{- $errors := .View.Errors}}
            {{- range .View.Inputs}}
            <div class="field">
                <label for="{{.ID}}">{{.Label}}</label>
                {{- if .Multiline}}
                <textarea id="{{.ID}}" name="{{.Name}}"{{if .Invalid}} aria-invalid="true"{{end}}>{{.Value}}</textarea>
                {{- else}}
                <input id="{{.ID}}" name="{{.Name}}" value="{{.Value}}"{{if .Invalid}} aria-invalid="true"{{end}}>
                {{- end}}
                {{- $name := .Name}}
                {{- range $errors}}{{if eq .Field $name}}
                <p class="error" data-testid="{{.TestID}}">{{.Message}}</p>
                {{- end}}{{end}}
            </div>
            {{- end}}
            <button type="submit">{{.View.Submit.Label}}</button>
        </form>
        {{- with .View.Display}}
        <section class="display">
            <h2>You Submitted:</h2>
            <p>First Name: <span>{{.FirstName}}</span></p>
            <p>Last Name: <span>{{.LastName}}</span></p>
            <p>Email: <span>{{.Email}}</span></p>
            <p data-testid="{{.MessageTestID}}">{{if .ShowMessage}}Message: <span>{{.Message}}</span>{{end}}</p>
        </section>
        {{- end}}
    </div>
</body>
</html>
{{end}}`

// Templates parses every page template, for gin's SetHTMLTemplate
func Templates() *template.Template {
	return template.Must(template.New("web").Parse(contactFormTemplate))
}
