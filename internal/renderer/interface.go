package renderer

import "errors"

// ErrRenderInit is returned when the page-layout engine cannot be set up
// (unknown font family, unknown page size). It is the only failure Render reports.
var ErrRenderInit = errors.New("render init failed")

// Renderer turns free text into a printable PDF document.
type Renderer interface {
	Render(text string) ([]byte, error)
}
