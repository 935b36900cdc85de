package cli

import (
	"context"
	"fmt"

	"github.com/tzpay/payconsole/internal/models"
	"github.com/tzpay/payconsole/internal/stats"
)

// Dashboard fetches the full payments list and prints the summary the web
// console showed: counts by status and the most recent payments.
func (a *App) Dashboard(ctx context.Context) error {
	payments, err := a.api.Payments(ctx, models.PaymentFilters{})
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}

	s := stats.Summarize(payments)

	fmt.Fprintf(a.out, "Total payments: %d\n", s.Total)
	fmt.Fprintf(a.out, "  successful:   %d\n", s.Successful)
	fmt.Fprintf(a.out, "  pending:      %d\n", s.Pending)
	fmt.Fprintf(a.out, "  failed:       %d\n", s.Failed)

	if len(s.Recent) > 0 {
		fmt.Fprintln(a.out, "Recent payments:")
		for _, p := range s.Recent {
			a.printPaymentLine(p)
		}
	}
	return nil
}
