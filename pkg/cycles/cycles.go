// Package cycles derives settlement-cycle schedules for investments. Cycle
// boundaries are computed once, at generation time, from the investment's
// creation and end dates; status is a pure function of the boundaries and
// the clock, shared by generation and settlement so the two can never
// disagree about whether a cycle is due.
package cycles

import (
	"fmt"
	"time"

	"github.com/HunterTXx/privateplapay/pkg/models"
	"github.com/HunterTXx/privateplapay/pkg/rates"
	"github.com/google/uuid"
)

// InvalidScheduleError reports a degenerate schedule request (non-positive
// cycle count or an end date not after the creation date).
type InvalidScheduleError struct {
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("invalid cycle schedule: %s", e.Reason)
}

const day = 24 * time.Hour

// StatusFor maps a cycle's boundaries and the current time to a lifecycle
// status. The end boundary is exclusive: at exactly end the cycle is
// completed.
func StatusFor(start, end, now time.Time) models.CycleStatus {
	switch {
	case now.Before(start):
		return models.CycleUpcoming
	case now.Before(end):
		return models.CycleActive
	default:
		return models.CycleCompleted
	}
}

// materialsFor returns the cosmetic materials-recycled display figure for
// a cycle in the given status. Derived from the cycle number so repeated
// generation is deterministic.
func materialsFor(status models.CycleStatus, number int) int {
	switch status {
	case models.CycleCompleted:
		return 100
	case models.CycleActive:
		return 10 + (number*37)%80
	default:
		return 0
	}
}

// Generate produces the full ordered cycle set for an investment. The
// per-cycle duration is the whole number of days that divides
// [CreationDate, EndDate) into CycleCount spans; floor rounding means the
// final cycle may run slightly short of the nominal end date, which is
// accepted policy. Each cycle's amount is the full principal (the base
// for profit computation, not a disbursed slice) and its profit is half
// the stated per-2-cycles rate against that base.
//
// Statuses are evaluated against now, so generating from backdated
// investments yields already-active or already-completed cycles.
func Generate(inv *models.Investment, now time.Time) ([]models.Cycle, error) {
	if inv.CycleCount < 1 {
		return nil, &InvalidScheduleError{Reason: fmt.Sprintf("cycle count %d < 1", inv.CycleCount)}
	}
	if !inv.EndDate.After(inv.CreationDate) {
		return nil, &InvalidScheduleError{Reason: "end date not after creation date"}
	}

	durationDays := int64(inv.EndDate.Sub(inv.CreationDate)/day) / int64(inv.CycleCount)
	if durationDays < 1 {
		return nil, &InvalidScheduleError{Reason: "schedule shorter than one day per cycle"}
	}
	duration := time.Duration(durationDays) * day

	out := make([]models.Cycle, 0, inv.CycleCount)
	for i := 1; i <= inv.CycleCount; i++ {
		start := inv.CreationDate.Add(time.Duration(i-1) * duration)
		end := inv.CreationDate.Add(time.Duration(i) * duration)
		status := StatusFor(start, end, now)
		out = append(out, models.Cycle{
			Id:                uuid.New().String(),
			InvestmentID:      inv.Id,
			UserID:            inv.UserID,
			CycleNumber:       i,
			StartDate:         start,
			EndDate:           end,
			Amount:            inv.Amount,
			Profit:            rates.PerCycleProfit(inv.Amount, inv.ReturnRate),
			Status:            status,
			MaterialsRecycled: materialsFor(status, i),
		})
	}
	return out, nil
}
