package mail

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Render_Welcome(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	subject, body, err := renderer.Render(entity.EmailTemplateWelcome, map[string]any{
		"first_name": "Mei",
	})

	require.NoError(t, err)
	assert.Equal(t, "Welcome to our store", subject)
	assert.Contains(t, body, "Hi Mei,")
}

func TestTemplateRenderer_Render_OrderConfirmation(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	subject, body, err := renderer.Render(entity.EmailTemplateOrderConfirmation, map[string]any{
		"first_name":   "Mei",
		"order_number": "SO-1042",
		"total":        "NT$1,290",
	})

	require.NoError(t, err)
	assert.Equal(t, "Your order is confirmed", subject)
	assert.Contains(t, body, "SO-1042")
	assert.Contains(t, body, "NT$1,290")
}

func TestTemplateRenderer_Render_ShippingUpdateOptionalFields(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, body, err := renderer.Render(entity.EmailTemplateShippingUpdate, map[string]any{
		"first_name":   "Mei",
		"order_number": "SO-1042",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "SO-1042")
	// Optional sections are skipped when the data is absent.
	assert.NotContains(t, body, "Tracking number")
	assert.NotContains(t, body, "Carrier")
}

func TestTemplateRenderer_Render_EscapesHTML(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, body, err := renderer.Render(entity.EmailTemplateWelcome, map[string]any{
		"first_name": "<script>alert(1)</script>",
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestTemplateRenderer_Render_UnknownTemplate(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, _, err = renderer.Render("password_reset", nil)

	assert.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "EMAIL_TEMPLATE_UNKNOWN", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "password_reset")
}
