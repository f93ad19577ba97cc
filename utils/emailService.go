package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"traineasy/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
// Callers fire it best-effort; a failure never blocks the request path.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping email:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Traineasy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A4B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A4B; line-height: 1.6; }
			.content h2 { color: #1B3A4B; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>TRAINEASY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Traineasy. Todos os direitos reservados.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered employee
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Olá <b>%s</b>,</p>
		<p>Sua conta na plataforma de treinamentos foi criada. Acesse com o seu
		e-mail para acompanhar os treinamentos do seu departamento e acumular pontos.</p>
	`, name)
	_ = SendEmail([]string{email}, "Bem-vindo à Traineasy", getEmailTemplate("Bem-vindo!", body))
}

// SendCompanyPendingEmail notifies a company that its registration awaits approval
func SendCompanyPendingEmail(email, tradeName string) {
	body := fmt.Sprintf(`
		<p>Olá <b>%s</b>,</p>
		<p>Recebemos o cadastro da sua empresa. Ele está em análise e você será
		notificado assim que for aprovado.</p>
	`, tradeName)
	_ = SendEmail([]string{email}, "Cadastro recebido", getEmailTemplate("Cadastro em análise", body))
}
