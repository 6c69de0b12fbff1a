package html

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// RenderLayout wraps a body in the shared document shell. The site uses
// Bootstrap and bootstrap-icons, same as the markup it replaced.
func RenderLayout(title, body string) string {
	return fmt.Sprintf(`<!doctype html><html lang="pt-BR"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet"><link href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.css" rel="stylesheet"><link rel="stylesheet" href="/assets/app.css"></head><body>%s%s</body></html>`, title, body, CSRFFormScript())
}

// Document builds a renderable page component from a body fragment.
func Document(title, body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, RenderLayout(title, body))
		return err
	})
}
