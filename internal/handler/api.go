package handler

import (
	"github.com/AbhradeepRoy/Ayush/pkg/api"
)

// API implements the generated-style ServerInterface by delegating to the
// individual view handlers
type API struct {
	*SystemHandler
	*StateHandler
	*DashboardHandler
	*TrackerHandler
	*ChatHandler
	*MedicalHistoryHandler
	*SettingsHandler
	*AuditHandler
}

var _ api.ServerInterface = (*API)(nil)
