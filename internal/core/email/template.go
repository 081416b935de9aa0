package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateData fills the notification email layout
type TemplateData struct {
	Title    string
	Intro    string
	Fields   []Field
	Footer   string
	LinkURL  string
	LinkText string
}

type Field struct {
	Label string
	Value string
}

var notificationTmpl = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #111; color: #f5c518; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { padding: 10px; text-align: center; font-size: 12px; color: #666; }
        td.label { font-weight: bold; padding-right: 12px; vertical-align: top; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>{{.Title}}</h1></div>
        <div class="content">
            {{if .Intro}}<p>{{.Intro}}</p>{{end}}
            {{if .Fields}}<table>{{range .Fields}}
                <tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>{{end}}
            </table>{{end}}
            {{if .LinkURL}}<p><a href="{{.LinkURL}}">{{.LinkText}}</a></p>{{end}}
        </div>
        <div class="footer"><p>{{.Footer}}</p></div>
    </div>
</body>
</html>`))

// RenderNotification renders data into the HTML layout, escaping every value
func RenderNotification(data TemplateData) (string, error) {
	if data.Footer == "" {
		data.Footer = "Sent from the Soundzy World Global website"
	}
	if data.LinkText == "" {
		data.LinkText = data.LinkURL
	}

	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}
	return buf.String(), nil
}
