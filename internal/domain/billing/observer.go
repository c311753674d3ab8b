package billing

import (
	"context"

	"github.com/rs/zerolog"
)

// LogObserver is the default payment observer: it writes a structured
// log entry for every paid bill. This is the single notification
// channel registered at startup.
type LogObserver struct {
	log zerolog.Logger
}

func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) BillPaid(_ context.Context, b *Bill) error {
	o.log.Info().
		Str("bill_id", b.ID.String()).
		Str("patient_id", b.PatientID.String()).
		Int("charges", len(b.Charges)).
		Float64("total", b.Total()).
		Msg("bill paid")
	return nil
}
