// Package web renders the single-page UI from an embedded template.
package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"sync"

	"picprompt/internal/domain"
)

//go:embed assets/index.html
var indexTmpl string

// PageData feeds the index template: selector choices and the defaults the
// controls start at.
type PageData struct {
	Styles             []string
	Artists            []string
	DefaultTemperature float64
	DefaultMaxTokens   int
	DefaultTopP        float64
	DefaultInstruction string
}

// DefaultInstruction matches the editable instruction the original UI
// shipped with.
const DefaultInstruction = "Make a list of ten interesting and elaborate prompts for image generation based on these labels in an image, start with 'an' and bonus points for adding art styles and artists. Separate instructions with ,"

type Page struct {
	tmpl *template.Template
	once sync.Once
}

// Render executes the index template against the given data.
func (p *Page) Render(data PageData) ([]byte, error) {
	p.once.Do(func() {
		p.tmpl = template.Must(template.New("index").Parse(indexTmpl))
	})

	if data.DefaultTemperature == 0 {
		data.DefaultTemperature = domain.DefaultTemperature
	}
	if data.DefaultMaxTokens == 0 {
		data.DefaultMaxTokens = domain.DefaultMaxTokens
	}
	if data.DefaultTopP == 0 {
		data.DefaultTopP = domain.DefaultTopP
	}
	if data.DefaultInstruction == "" {
		data.DefaultInstruction = DefaultInstruction
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
