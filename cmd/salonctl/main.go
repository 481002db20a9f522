// Command salonctl lists and edits salon services and bookings through the API.
//
// Usage:
//
//	salonctl [-addr URL] services list
//	salonctl services create -name N -price P -duration D -description T
//	salonctl services update -id ID [-name N] [-price P] [-duration D] [-description T]
//	salonctl services delete -id ID
//	salonctl bookings list
//	salonctl bookings create -customer N -phone P -service ID -date D
//	salonctl bookings update -id ID [-customer N] [-phone P] [-service ID] [-date D]
//	salonctl bookings delete -id ID
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"salon/pkg/client"
)

const defaultAddr = "http://localhost:5000"

var (
	exitFunc = os.Exit

	errUsage = errors.New("usage: salonctl [-addr URL] services|bookings list|create|update|delete [flags]")
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}

// writerNotifier prints view notifications the way the web client shows toasts.
type writerNotifier struct {
	out io.Writer
	err io.Writer
}

func (n writerNotifier) Success(msg string) { fmt.Fprintln(n.out, msg) }
func (n writerNotifier) Error(msg string)   { fmt.Fprintln(n.err, msg) }

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("salonctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", envOr("SALON_API_URL", defaultAddr), "API base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return errUsage
	}

	api := client.New(*addr)
	notify := writerNotifier{out: stdout, err: stderr}

	switch rest[0] {
	case "services":
		return runServices(ctx, client.NewServiceView(api, notify), rest[1], rest[2:], stdout, stderr)
	case "bookings":
		return runBookings(ctx, client.NewBookingView(api, notify), rest[1], rest[2:], stdout, stderr)
	default:
		return errUsage
	}
}

func runServices(ctx context.Context, view *client.ServiceView, cmd string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("services "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	id := fs.String("id", "", "service ID")
	var form client.ServiceForm
	fs.StringVar(&form.Name, "name", "", "service name")
	fs.Float64Var(&form.Price, "price", 0, "price")
	fs.IntVar(&form.Duration, "duration", 0, "duration in minutes")
	fs.StringVar(&form.Description, "description", "", "description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch cmd {
	case "list":
		if err := view.Load(ctx); err != nil {
			return err
		}
		printServices(stdout, view.Items())
		return nil
	case "create":
		created, err := view.Create(ctx, form)
		if err != nil {
			return err
		}
		printServices(stdout, []client.Service{*created})
		return nil
	case "update":
		if *id == "" {
			return errors.New("services update: -id is required")
		}
		if err := view.Load(ctx); err != nil {
			return err
		}
		updated, err := view.Update(ctx, *id, mergeServiceForm(view.Items(), *id, form))
		if err != nil {
			return err
		}
		printServices(stdout, []client.Service{*updated})
		return nil
	case "delete":
		if *id == "" {
			return errors.New("services delete: -id is required")
		}
		return view.Delete(ctx, *id)
	default:
		return errUsage
	}
}

func runBookings(ctx context.Context, view *client.BookingView, cmd string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bookings "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	id := fs.String("id", "", "booking ID")
	var form client.BookingForm
	fs.StringVar(&form.CustomerName, "customer", "", "customer name")
	fs.StringVar(&form.Phone, "phone", "", "phone number")
	fs.StringVar(&form.SelectedService, "service", "", "service ID")
	fs.StringVar(&form.Date, "date", "", "appointment date, e.g. 2025-06-01T10:00")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch cmd {
	case "list":
		if err := view.Load(ctx); err != nil {
			return err
		}
		printBookings(stdout, view.Items())
		return nil
	case "create":
		created, err := view.Create(ctx, form)
		if err != nil {
			return err
		}
		printBookings(stdout, []client.Booking{*created})
		return nil
	case "update":
		if *id == "" {
			return errors.New("bookings update: -id is required")
		}
		if err := view.Load(ctx); err != nil {
			return err
		}
		updated, err := view.Update(ctx, *id, mergeBookingForm(view.Items(), *id, form))
		if err != nil {
			return err
		}
		printBookings(stdout, []client.Booking{*updated})
		return nil
	case "delete":
		if *id == "" {
			return errors.New("bookings delete: -id is required")
		}
		return view.Delete(ctx, *id)
	default:
		return errUsage
	}
}

// mergeServiceForm prefills unset flags from the current record, like an edit form.
func mergeServiceForm(items []client.Service, id string, form client.ServiceForm) client.ServiceForm {
	for _, s := range items {
		if s.ID != id {
			continue
		}
		if form.Name == "" {
			form.Name = s.Name
		}
		if form.Price == 0 {
			form.Price = s.Price
		}
		if form.Duration == 0 {
			form.Duration = s.Duration
		}
		if form.Description == "" {
			form.Description = s.Description
		}
	}
	return form
}

func mergeBookingForm(items []client.Booking, id string, form client.BookingForm) client.BookingForm {
	for _, b := range items {
		if b.ID != id {
			continue
		}
		if form.CustomerName == "" {
			form.CustomerName = b.CustomerName
		}
		if form.Phone == "" {
			form.Phone = b.Phone
		}
		if form.SelectedService == "" && b.SelectedService != nil {
			form.SelectedService = b.SelectedService.ID
		}
		if form.Date == "" {
			form.Date = b.Date.UTC().Format(time.RFC3339)
		}
	}
	return form
}

func printServices(w io.Writer, items []client.Service) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tDURATION\tDESCRIPTION")
	for _, s := range items {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d min\t%s\n", s.ID, s.Name, s.Price, s.Duration, s.Description)
	}
	_ = tw.Flush()
}

func printBookings(w io.Writer, items []client.Booking) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tPHONE\tSERVICE\tDATE")
	for _, b := range items {
		service := "(deleted)"
		if b.SelectedService != nil {
			service = b.SelectedService.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.CustomerName, b.Phone, service, b.Date.UTC().Format(time.RFC3339))
	}
	_ = tw.Flush()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
