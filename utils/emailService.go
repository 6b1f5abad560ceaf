package utils

import (
	"fmt"
	"lms/config"
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Generic Send Email (SendGrid)
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("[EMAIL] SENDGRID_API_KEY not set, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail(config.AppConfig.AppName, config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	res, err := client.Send(message)
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		log.Printf("Error sending email - status: %d - body: %s", res.StatusCode, res.Body)
		return fmt.Errorf("sendgrid returned status %d", res.StatusCode)
	}
	return nil
}

// HTML Wrapper (Professional Look)
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #43A047; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #43A047; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 %s. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, config.AppConfig.AppName, title, bodyContent, config.AppConfig.AppName)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to " + config.AppConfig.AppName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome aboard! Your account has been created successfully.</p>
		<p>Browse the catalog, enroll in a course, and start learning at your own pace.</p>
	`, name)

	SendEmail(email, name, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Enrollment Confirmation
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Open the course player and start with the first lesson. Your progress is saved automatically.
		</div>
	`, name, courseTitle)

	SendEmail(email, name, subject, getEmailTemplate("Enrollment Successful", body))
}

// 3. Course Completion / Certificate
func SendCourseCompletionEmail(email, name, courseTitle string) {
	subject := "Congratulations! You completed " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have completed every lesson in <strong>%s</strong>. Well done!</p>
		<p>Your certificate of completion is now available on your dashboard.</p>
		<a href="#" class="btn">View Certificate</a>
	`, name, courseTitle)

	SendEmail(email, name, subject, getEmailTemplate("Course Completed", body))
}
