package email

import (
	"bytes"
	"html/template"
	"strings"
)

const layoutStart = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`
const gradient = `background: linear-gradient(135deg, #9333ea, #ec4899, #f97316); padding: 20px; border-radius: 8px;`

var templates = template.Must(template.New("email").Funcs(template.FuncMap{
	"stars": stars,
}).Parse(`
{{define "contact_customer"}}` + layoutStart + `
<h1 style="color: #9333ea; text-align: center;">Thank You, {{.Name}}!</h1>
<p style="font-size: 16px; color: #333;">We've received your message and will get back to you as soon as possible.</p>
<div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="color: #9333ea; margin-top: 0;">Your Message:</h3>
<p style="color: #666;"><strong>Subject:</strong> {{.Subject}}</p>
<p style="color: #666;"><strong>Message:</strong><br>{{.Message}}</p>
</div>
<p style="font-size: 14px; color: #666; margin-top: 30px;">Best regards,<br>The Priyasi Team</p>
</div>{{end}}

{{define "contact_admin"}}` + layoutStart + `
<h1 style="color: #9333ea;">New Contact Form Submission</h1>
<div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong><br>{{.Message}}</p>
</div>
</div>{{end}}

{{define "newsletter"}}` + layoutStart + `
<h1 style="color: #9333ea; text-align: center;">Welcome to Priyasi!</h1>
<p style="font-size: 16px; color: #333;">Thank you for subscribing to our newsletter.</p>
<p style="font-size: 16px; color: #333;">As a welcome gift, enjoy <strong>10% off your first order</strong> with code:</p>
<div style="` + gradient + ` text-align: center; margin: 20px 0;">
<h2 style="color: white; margin: 0; font-size: 24px; letter-spacing: 2px;">{{.Code}}</h2>
</div>
<p style="font-size: 16px; color: #333;">Discover our handcrafted khadi collections and celebrate sustainable fashion.</p>
<p style="font-size: 14px; color: #666; margin-top: 30px;">We respect your privacy. You can unsubscribe anytime.</p>
<p style="font-size: 14px; color: #666;">Best regards,<br>The Priyasi Team</p>
</div>{{end}}

{{define "feedback_customer"}}` + layoutStart + `
<h1 style="color: #9333ea; text-align: center;">Thank You, {{.Name}}!</h1>
<p style="font-size: 16px; color: #333;">We truly appreciate you taking the time to share your feedback with us.</p>
<div style="` + gradient + ` margin: 20px 0;">
<h3 style="color: white; margin: 0;">Your Rating: {{stars .Rating}}</h3>
</div>
{{if .ProductName}}<p style="color: #666;"><strong>Product:</strong> {{.ProductName}}</p>{{end}}
<p style="color: #666;"><strong>Your Feedback:</strong><br>{{.Feedback}}</p>
<p style="font-size: 14px; color: #666; margin-top: 30px;">Your opinion helps us improve and serve you better.</p>
<p style="font-size: 14px; color: #666;">Best regards,<br>The Priyasi Team</p>
</div>{{end}}

{{define "feedback_admin"}}` + layoutStart + `
<h1 style="color: #9333ea;">New Customer Feedback</h1>
<div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Rating:</strong> {{stars .Rating}} ({{.Rating}}/5)</p>
{{if .ProductName}}<p><strong>Product:</strong> {{.ProductName}}</p>{{end}}
<p><strong>Feedback:</strong><br>{{.Feedback}}</p>
</div>
</div>{{end}}
`))

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat("⭐", n)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
