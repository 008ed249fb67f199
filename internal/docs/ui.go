package docs

import (
	"bytes"
	"fmt"
	"html/template"
)

const swaggerUIVersion = "5.17.14"

var uiTemplate = template.Must(template.New("swagger-ui").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@{{.Version}}/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@{{.Version}}/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = function () {
      window.ui = SwaggerUIBundle({ url: {{.SpecURL}}, dom_id: "#swagger-ui" });
    };
  </script>
</body>
</html>
`))

func renderUI(title, specURL string) ([]byte, error) {
	var buf bytes.Buffer
	err := uiTemplate.Execute(&buf, struct {
		Title   string
		Version string
		SpecURL string
	}{
		Title:   title,
		Version: swaggerUIVersion,
		SpecURL: specURL,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering swagger ui: %w", err)
	}

	return buf.Bytes(), nil
}
