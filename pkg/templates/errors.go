package templates

import "errors"

var (
	// ErrTemplateNotFound is returned when no source provides the template.
	ErrTemplateNotFound = errors.New("templates: template not found")

	// ErrRender is returned when a template fails to execute.
	ErrRender = errors.New("templates: render failed")
)
