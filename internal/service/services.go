package service

import (
	"github.com/xolan/timewext/internal/config"
	"github.com/xolan/timewext/internal/ctt"
)

// Services holds all service instances used by the application
type Services struct {
	Current *CurrentService
	Export  *ExportService
}

// NewServices wires the services for the given configuration and tracker
func NewServices(cfg config.Config, tracker ctt.Tracker) *Services {
	return &Services{
		Current: NewCurrentService(),
		Export:  NewExportService(tracker, cfg.Location()),
	}
}
