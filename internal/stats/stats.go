// Package stats aggregates a payments listing into the dashboard summary.
package stats

import "github.com/tzpay/payconsole/internal/models"

// recentLimit caps the "recent payments" slice shown on the dashboard.
const recentLimit = 5

// Summary holds the dashboard numbers for one payments listing.
type Summary struct {
	Total      int
	Successful int
	Failed     int
	Pending    int
	Recent     []models.Payment
}

// Summarize counts payments by status and keeps the first recentLimit
// entries as the recent slice. The backend returns payments newest-first,
// so no re-sorting happens here.
func Summarize(payments []models.Payment) Summary {
	s := Summary{Total: len(payments)}
	for _, p := range payments {
		switch p.Status {
		case models.StatusSuccessful:
			s.Successful++
		case models.StatusFailed:
			s.Failed++
		case models.StatusPending:
			s.Pending++
		}
	}

	limit := recentLimit
	if len(payments) < limit {
		limit = len(payments)
	}
	s.Recent = append([]models.Payment(nil), payments[:limit]...)
	return s
}
