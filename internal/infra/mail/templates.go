package mail

import (
	"html/template"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// Subjects per template. order_confirmation and shipping_update interpolate
// the order number when the caller supplies one.
var templateSubjects = map[string]string{
	entity.EmailTemplateWelcome:           "Welcome to our store",
	entity.EmailTemplateOrderConfirmation: "Your order is confirmed",
	entity.EmailTemplateShippingUpdate:    "Your order is on its way",
}

var templateBodies = map[string]string{
	entity.EmailTemplateWelcome: `<html><body>
<p>Hi {{.first_name}},</p>
<p>Thanks for creating an account with us. Your storefront profile is ready.</p>
<p>Happy shopping!</p>
</body></html>`,

	entity.EmailTemplateOrderConfirmation: `<html><body>
<p>Hi {{.first_name}},</p>
<p>We received your order <strong>{{.order_number}}</strong> and it is now being prepared.</p>
{{if .total}}<p>Order total: {{.total}}</p>{{end}}
<p>We will let you know as soon as it ships.</p>
</body></html>`,

	entity.EmailTemplateShippingUpdate: `<html><body>
<p>Hi {{.first_name}},</p>
<p>Your order <strong>{{.order_number}}</strong> has shipped.</p>
{{if .tracking_number}}<p>Tracking number: {{.tracking_number}}</p>{{end}}
{{if .carrier}}<p>Carrier: {{.carrier}}</p>{{end}}
</body></html>`,
}

// TemplateRenderer renders transactional email templates by name.
// It implements the service.TemplateRenderer interface.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer parses all built-in templates up front so a bad
// template fails at startup, not per send.
func NewTemplateRenderer() (service.TemplateRenderer, error) {
	templates := make(map[string]*template.Template, len(templateBodies))
	for name, body := range templateBodies {
		parsed, err := template.New(name).Parse(body)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse email template %s", name)
		}
		templates[name] = parsed
	}

	return &TemplateRenderer{templates: templates}, nil
}

// Render produces the subject and HTML body for one template.
// Returns ErrEmailTemplateUnknown for a name outside the built-in set.
func (r *TemplateRenderer) Render(name string, data map[string]any) (subject, htmlBody string, err error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", "", domainerrors.ErrEmailTemplateUnknown.WithDetails("template: " + name)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", errors.Wrapf(err, "failed to render email template %s", name)
	}

	return templateSubjects[name], buf.String(), nil
}
