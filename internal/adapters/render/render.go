// Package render defines the visualization contract for control surfaces.
// The engine never inspects rendering output; renderers are sinks.
package render

import (
	"context"

	"github.com/okian/counterspace/internal/domain/model"
)

// Annotation carries the flags a renderer needs to label a surface.
type Annotation struct {
	// Difference marks a delta surface (diverging scale around zero).
	Difference bool
	// Presence marks a presence-scenario surface.
	Presence bool
	// NewLocation marks a relocated-player surface.
	NewLocation bool

	Title string
}

// Renderer consumes a surface plus annotation flags and renders it.
type Renderer interface {
	Render(ctx context.Context, s *model.Surface, ann Annotation) error
}
