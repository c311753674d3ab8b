// Package session wires the domain services into one explicit object
// that is passed to the console glue and the reporting view. There is
// no package-level state; constructing a second Session yields a
// fully independent world.
package session

import (
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/pharmacy"
	"github.com/hms/hms/internal/domain/rooms"
	"github.com/hms/hms/internal/domain/roster"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/platform/reporting"
	"github.com/hms/hms/internal/platform/telemetry"
)

type Session struct {
	Config    *config.Config
	Log       zerolog.Logger
	Roster    *roster.Service
	Scheduler *scheduling.Service
	Rooms     *rooms.Allocator
	Pharmacy  *pharmacy.Tracker
	Ledger    *billing.Ledger
	Reports   *reporting.View
	Metrics   *telemetry.Recorder
}

// New builds a session over fresh in-memory state and registers the
// default payment observer (a structured logger).
func New(cfg *config.Config, log zerolog.Logger) *Session {
	rosterSvc := roster.NewService(roster.NewMemRepository())
	scheduler := scheduling.NewService(scheduling.NewMemRepository(), cfg.ScheduleLatency())
	allocator := rooms.NewAllocator(cfg.Rooms)
	ledger := billing.NewLedger(billing.NewMemRepository())
	ledger.Subscribe(billing.NewLogObserver(log))

	return &Session{
		Config:    cfg,
		Log:       log,
		Roster:    rosterSvc,
		Scheduler: scheduler,
		Rooms:     allocator,
		Pharmacy:  pharmacy.NewTracker(),
		Ledger:    ledger,
		Reports:   reporting.NewView(rosterSvc, scheduler, allocator, ledger),
		Metrics:   telemetry.NewRecorder(),
	}
}
