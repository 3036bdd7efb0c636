package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendWelcomeEmail greets a new account. Best-effort: registration has
// already committed by the time this runs, so failures are only logged.
func SendWelcomeEmail(email string, firstName string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set, skipping welcome email")
		return nil
	}

	from := mail.NewEmail("Softkom Todo", "donotreply@softkom.app")
	subject := "Welcome to Softkom Todo"
	to := mail.NewEmail(firstName, email)

	plainTextContent := fmt.Sprintf("Hi %s, your account is ready. Log in to start adding tasks.", firstName)
	htmlContent := fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Log in to start adding tasks.</p>", firstName)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Println("Error sending welcome email:", err)
		return err
	}

	log.Println("Welcome email sent to:", email, "status:", response.StatusCode)
	return nil
}
