package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tzpay/payconsole/internal/models"
)

// parseFilterArgs turns REPL arguments of the form key=value into payment
// filters. Recognized keys: status, method, from, to, search. Unknown keys
// are reported back rather than silently ignored.
func parseFilterArgs(args []string) (models.PaymentFilters, error) {
	var f models.PaymentFilters
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return f, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch key {
		case "status":
			f.Status = models.PaymentStatus(value)
		case "method":
			f.PaymentMethod = models.PaymentMethod(value)
		case "from":
			f.DateFrom = value
		case "to":
			f.DateTo = value
		case "search":
			f.Search = value
		default:
			return f, fmt.Errorf("unknown filter %q", key)
		}
	}
	return f, nil
}

// Payments lists payments, optionally filtered:
//
//	payments status=pending method=card from=2026-01-01 search=acme
func (a *App) Payments(ctx context.Context, args []string) error {
	filters, err := parseFilterArgs(args)
	if err != nil {
		fmt.Fprintf(a.out, "Bad filter: %s\n", err)
		return err
	}

	payments, err := a.api.Payments(ctx, filters)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}

	if len(payments) == 0 {
		fmt.Fprintln(a.out, "No payments found.")
		return nil
	}
	for _, p := range payments {
		a.printPaymentLine(p)
	}
	return nil
}

// Show fetches one payment by id.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Bad payment id %q\n", args[0])
		return err
	}

	p, err := a.api.Payment(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Reference:  %s\n", p.Reference)
	fmt.Fprintf(a.out, "Amount:     %.2f %s\n", p.Amount, p.Currency)
	fmt.Fprintf(a.out, "Method:     %s\n", p.PaymentMethod)
	fmt.Fprintf(a.out, "Status:     %s\n", p.Status)
	fmt.Fprintf(a.out, "Customer:   %s <%s>\n", p.Customer.Name, p.Customer.Email)
	fmt.Fprintf(a.out, "Created at: %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// NewPayment walks the payment form and prints the provider link to share
// with the customer. Currency and method default the way the web form did.
func (a *App) NewPayment(ctx context.Context) error {
	var req models.InitializePaymentRequest
	var err error

	amountStr, err := getSimpleText(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	if req.Amount, err = strconv.ParseFloat(amountStr, 64); err != nil {
		fmt.Fprintf(a.out, "Bad amount %q\n", amountStr)
		return err
	}

	if req.Currency, err = GetWithDefault(a.reader, "Currency", "TZS", a.out); err != nil {
		return err
	}
	method, err := GetWithDefault(a.reader, "Payment method (mobile_money|card|bank_transfer)", string(models.MethodMobileMoney), a.out)
	if err != nil {
		return err
	}
	req.PaymentMethod = models.PaymentMethod(method)

	if req.CustomerName, err = getSimpleText(a.reader, "Customer name", a.out); err != nil {
		return err
	}
	if req.CustomerEmail, err = getSimpleText(a.reader, "Customer email", a.out); err != nil {
		return err
	}
	if req.CustomerPhone, err = getSimpleText(a.reader, "Customer phone", a.out); err != nil {
		return err
	}

	if err := validateNewPayment(req); err != nil {
		fmt.Fprintf(a.out, "Invalid input: %s\n", err)
		return err
	}

	resp, err := a.api.InitializePayment(ctx, req)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}
	if resp.Status != "success" {
		fmt.Fprintln(a.out, "Failed to initialize payment. Please try again.")
		return nil
	}

	fmt.Fprintf(a.out, "Payment link generated. Share it with your customer:\n%s\n", resp.Data.PaymentLink)
	return nil
}

// Verify runs redirect verification for a callback URL pasted from the
// payment provider.
func (a *App) Verify(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: verify <callback-url>")
		return nil
	}

	out := a.verifier.HandleRedirect(ctx, args[0])
	if out.Verified {
		fmt.Fprintf(a.out, "%s\n", out.Message)
		if out.Payment != nil {
			fmt.Fprintf(a.out, "Reference: %s\nAmount: %.2f %s\n", out.Payment.Reference, out.Payment.Amount, out.Payment.Currency)
		}
		return nil
	}

	fmt.Fprintf(a.out, "Payment failed: %s\n", out.Message)
	return nil
}

// Customers lists the customer directory.
func (a *App) Customers(ctx context.Context) error {
	customers, err := a.api.Customers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err)
		return err
	}
	if len(customers) == 0 {
		fmt.Fprintln(a.out, "No customers yet.")
		return nil
	}
	for _, c := range customers {
		fmt.Fprintf(a.out, "%-25s %s\n", c.Name, c.Email)
	}
	return nil
}

func (a *App) printPaymentLine(p models.Payment) {
	fmt.Fprintf(a.out, "%-6d %-14s %10.2f %-4s %-14s %-10s %s\n",
		p.ID, p.Reference, p.Amount, p.Currency, p.PaymentMethod, p.Status,
		p.CreatedAt.Format("2006-01-02"))
}
