// Package scheduler runs the facility's recurring background jobs, currently
// a daily email reminding the care team which residents still have no daily
// report filed.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/casaverde/casa-verde-api/config"
	"github.com/casaverde/casa-verde-api/databases"
	templates "github.com/casaverde/casa-verde-api/templates/html"
)

const jobTimeout = 30 * time.Second

// Scheduler owns the cron runner for the reminder job
type Scheduler struct {
	DB       databases.DashboardDatabase
	Config   config.Config
	Location *time.Location

	cron *cron.Cron
}

// Start registers the reminder job and starts the cron runner in its own
// goroutine. It is a no-op when the email integration is not configured.
func (s *Scheduler) Start() error {
	if s.Config.SendgridAPIKey == "" || s.Config.ReminderTo == "" {
		zap.S().Info("reminder job disabled, sendgrid not configured")
		return nil
	}

	s.cron = cron.New(cron.WithLocation(s.Location))
	if _, err := s.cron.AddFunc(s.Config.ReminderCron, s.runReminder); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	s.cron.Start()
	zap.S().Infow("reminder job scheduled", "cron", s.Config.ReminderCron, "tz", s.Location.String())
	return nil
}

// Stop waits for a running job to finish before returning
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) runReminder() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	today := time.Now().In(s.Location).Format("2006-01-02")
	rows, err := s.DB.DailyStatus(ctx, today)
	if err != nil {
		zap.S().With(err).Error("reminder job failed to load daily status")
		return
	}

	pending := []string{}
	for _, row := range rows {
		if !row.HasDaily {
			pending = append(pending, row.Nome)
		}
	}
	if len(pending) == 0 {
		zap.S().Infow("reminder job found no pending residents", "date", today)
		return
	}

	if err := s.sendReminder(today, pending); err != nil {
		zap.S().With(err).Error("reminder job failed to send email")
		return
	}
	zap.S().Infow("reminder email sent", "date", today, "pending", len(pending))
}

func (s *Scheduler) sendReminder(date string, pending []string) error {
	from := mail.NewEmail("Casa Verde", "noreply@casaverde.app")
	to := mail.NewEmail("Equipe Casa Verde", s.Config.ReminderTo)
	subject := fmt.Sprintf("Relatórios diários pendentes - %s", date)

	var b strings.Builder
	fmt.Fprintf(&b, "Os seguintes residentes ainda não têm relatório diário em %s:\n\n", date)
	for _, nome := range pending {
		fmt.Fprintf(&b, "- %s\n", nome)
	}

	message := mail.NewSingleEmail(from, subject, to, b.String(), templates.RenderPendingReportsEmail(date, pending))
	client := sendgrid.NewSendClient(s.Config.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
