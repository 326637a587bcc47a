package api

import (
	"github.com/tanamapapp/tanamap-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Category   *service.CategoryService
	Layout     *service.LayoutService
	Assignment *service.AssignmentService
	View       *service.ViewService
}
