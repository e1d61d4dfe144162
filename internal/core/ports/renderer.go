package ports

import (
	"io"

	"go.trai.ch/tally/internal/core/domain"
)

// Renderer formats a status view as a single line.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	Render(w io.Writer, view domain.StatusView) error
}
