package service

import (
	"context"
	"fmt"
	"strings"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendWelcome(ctx context.Context, email, name string, role domain.UserRole) error {
	body := fmt.Sprintf("Hello %s,\n\nYour FleetBill account has been created with the %s role. You can now sign in with your email address.\n\nBest regards,\nThe FleetBill Team", name, role)
	return s.send(email, name, "Welcome to FleetBill", body)
}

func (s *emailService) SendTripCompleted(ctx context.Context, email, name string, trip *domain.Trip) error {
	subject := fmt.Sprintf("Trip completed: %s", trip.VehicleNumber)
	body := fmt.Sprintf("Hello %s,\n\nVehicle %s (driver %s) completed a trip and is ready for billing.", name, trip.VehicleNumber, trip.DriverName)
	if trip.DistanceKM != nil {
		body += fmt.Sprintf("\nDistance: %.1f km", *trip.DistanceKM)
	}
	body += "\n\nBest regards,\nThe FleetBill Team"
	return s.send(email, name, subject, body)
}

func (s *emailService) SendBillGenerated(ctx context.Context, email, name string, bill *billing.SavedBill) error {
	subject := fmt.Sprintf("Bill %s generated", bill.BillNumber)
	body := fmt.Sprintf(
		"Hello %s,\n\nBill %s was generated for vehicle %s.\n\nBasis: %s\nRate: %.2f\nToll fees: %.2f\nTotal: %.2f\n\nBest regards,\nThe FleetBill Team",
		name, bill.BillNumber, bill.Trip.VehicleNumber, bill.BasisLabel, bill.CalculatedRate, bill.TollFees, bill.TotalAmount,
	)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendPendingBillReminder(ctx context.Context, email, name string, pendingCount int) error {
	body := fmt.Sprintf("Hello %s,\n\nYou have %d completed trip(s) awaiting billing. Please generate the pending bills.\n\nBest regards,\nThe FleetBill Team", name, pendingCount)
	return s.send(email, name, "Pending bills reminder", body)
}

func (s *emailService) SendStaleTripReport(ctx context.Context, email, name string, trips []domain.Trip) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nThe following trips have been active for an unusually long time:\n\n", name)
	for i := range trips {
		t := &trips[i]
		fmt.Fprintf(&b, "- Vehicle %s, driver %s, started %s\n", t.VehicleNumber, t.DriverName, t.StartTime.Format("2006-01-02 15:04"))
	}
	b.WriteString("\nBest regards,\nThe FleetBill Team")
	return s.send(email, name, "Stale active trips report", b.String())
}

func (s *emailService) SendDailyBillingSummary(ctx context.Context, email, name string, billCount int, totalAmount float64) error {
	body := fmt.Sprintf("Hello %s,\n\nBilling summary for today: %d bill(s) generated, total amount %.2f.\n\nBest regards,\nThe FleetBill Team", name, billCount, totalAmount)
	return s.send(email, name, "Daily billing summary", body)
}
