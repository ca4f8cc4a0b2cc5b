// Command booking_cli is a terminal client for the desk-booking
// service: sign in with an access code, browse availability and book
// places.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	"github.com/deskbook/desk_booking_app/pkg/client"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	viper.SetDefault("BOOKING_BASE_URL", defaultBaseURL)
	viper.AutomaticEnv()

	credPath, err := client.DefaultCredentialPath()
	if err != nil {
		return err
	}
	store := client.NewFileCredentialStore(credPath)
	apiClient := client.NewClient(viper.GetString("BOOKING_BASE_URL"))
	flow := client.NewAuthFlow(apiClient, store)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "login":
		if len(args) != 2 {
			return errors.New("usage: booking_cli login <code>")
		}
		return login(ctx, flow, args[1])
	case "logout":
		if err := flow.Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	case "whoami":
		return whoami(flow)
	case "dates":
		return withRepository(flow, apiClient, func(repo *client.RemoteBookingRepository) error {
			return listDates(ctx, repo)
		})
	case "places":
		if len(args) != 2 {
			return errors.New("usage: booking_cli places <YYYY-MM-DD>")
		}
		date, err := time.Parse(domain.DateLayout, args[1])
		if err != nil {
			return fmt.Errorf("date must be formatted as YYYY-MM-DD: %w", err)
		}
		return withRepository(flow, apiClient, func(repo *client.RemoteBookingRepository) error {
			return listPlaces(ctx, repo, date)
		})
	case "book":
		if len(args) != 3 {
			return errors.New("usage: booking_cli book <YYYY-MM-DD> <place-id>")
		}
		date, err := time.Parse(domain.DateLayout, args[1])
		if err != nil {
			return fmt.Errorf("date must be formatted as YYYY-MM-DD: %w", err)
		}
		var placeID int
		if _, err := fmt.Sscanf(args[2], "%d", &placeID); err != nil {
			return fmt.Errorf("place id must be a number: %w", err)
		}
		return withRepository(flow, apiClient, func(repo *client.RemoteBookingRepository) error {
			return book(ctx, repo, date, placeID)
		})
	case "my":
		return withRepository(flow, apiClient, func(repo *client.RemoteBookingRepository) error {
			return listMine(ctx, repo)
		})
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: booking_cli <command>

Commands:
  login <code>              sign in with a 4-character access code
  logout                    clear the stored session
  whoami                    show the signed-in user
  dates                     list dates with free places
  places <YYYY-MM-DD>       list free places for a date
  book <YYYY-MM-DD> <id>    book a place
  my                        list your bookings

Environment:
  BOOKING_BASE_URL          service base URL (default `+defaultBaseURL+`)`)
}

func login(ctx context.Context, flow *client.AuthFlow, code string) error {
	if err := flow.CheckAndSaveAuthCode(ctx, code); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			return errors.New("access code must be 4 alphanumeric characters")
		case errors.Is(err, apperrors.ErrUnauthorized):
			return errors.New("invalid access code")
		case errors.Is(err, apperrors.ErrUnavailable):
			return fmt.Errorf("service unreachable: %w", err)
		default:
			return err
		}
	}
	creds, err := flow.Credentials()
	if err != nil || creds == nil {
		fmt.Println("Signed in.")
		return nil
	}
	fmt.Printf("Signed in as %s.\n", creds.Name)
	return nil
}

func whoami(flow *client.AuthFlow) error {
	creds, err := flow.Credentials()
	if err != nil {
		return err
	}
	if creds == nil || creds.Code == "" {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s (code %s)\n", creds.Name, creds.Code)
	return nil
}

// withRepository builds a remote repository for the stored session and
// runs fn against it.
func withRepository(flow *client.AuthFlow, apiClient *client.Client, fn func(*client.RemoteBookingRepository) error) error {
	creds, err := flow.Credentials()
	if err != nil {
		return err
	}
	if creds == nil || creds.Code == "" {
		return errors.New("not signed in, run: booking_cli login <code>")
	}
	return fn(client.NewRemoteBookingRepository(apiClient, creds.Code))
}

func listDates(ctx context.Context, repo *client.RemoteBookingRepository) error {
	dates, err := repo.ListAvailableDates(ctx)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		fmt.Println("No dates with free places.")
		return nil
	}
	for _, date := range dates {
		fmt.Println(domain.DateKey(date))
	}
	return nil
}

func listPlaces(ctx context.Context, repo *client.RemoteBookingRepository, date time.Time) error {
	places, err := repo.ListAvailablePlaces(ctx, date)
	if err != nil {
		return err
	}
	if len(places) == 0 {
		fmt.Printf("No free places on %s.\n", domain.DateKey(date))
		return nil
	}
	for _, place := range places {
		fmt.Printf("%3d  %s\n", place.ID, place.Name)
	}
	return nil
}

func book(ctx context.Context, repo *client.RemoteBookingRepository, date time.Time, placeID int) error {
	booking, err := repo.Book(ctx, date, placeID, "")
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyBooked):
			return fmt.Errorf("place %d is already booked on %s", placeID, domain.DateKey(date))
		case errors.Is(err, apperrors.ErrNotFound):
			return fmt.Errorf("no place %d on %s", placeID, domain.DateKey(date))
		default:
			return err
		}
	}
	fmt.Printf("Booked place %d on %s (booking %d).\n", placeID, domain.DateKey(date), booking.ID)
	return nil
}

func listMine(ctx context.Context, repo *client.RemoteBookingRepository) error {
	bookings, err := repo.ListUserBookings(ctx, "")
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Println("No bookings.")
		return nil
	}
	for _, booking := range bookings {
		fmt.Printf("%s  %s\n", domain.DateKey(booking.Date), booking.Place.Name)
	}
	return nil
}
