package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Synquic/zenyourlife-sub004/internal/logger"
	"github.com/Synquic/zenyourlife-sub004/internal/metrics"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"

	maxTries = 3
)

// Kinds label the outgoing mail for metrics.
const (
	KindConfirmation = "confirmation"
	KindReminder     = "reminder"
	KindCancellation = "cancellation"
	KindTest         = "test"
)

type EmailJob struct {
	Kind    string    `json:"kind"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Service queues outgoing mail on Redis and drains the queue in a
// background worker so HTTP handlers never block on SMTP.
type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, kind, to, name, subject, body string) error {
	job := EmailJob{
		Kind:    kind,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		metrics.RecordEmail(kind, "queue_error")
		return err
	}

	logger.Infof("Email queued: %s to %s", subject, to)
	metrics.RecordEmail(kind, "queued")
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Email to %s failed after %d attempts", job.To, maxTries)
			metrics.RecordEmail(job.Kind, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Kind, "sent")
	logger.Infof("Email sent successfully to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, data)
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendBookingConfirmation(ctx context.Context, to, name, date, timeSlot string) error {
	// Worded neutrally: depending on configuration a new booking starts
	// out pending, so this must not promise a confirmed slot.
	subject := "Your booking request has been received"
	body := fmt.Sprintf(`Hi %s,

Thank you for booking with us! We have received your request:

Date: %s
Time: %s

If you need to change or cancel your appointment, just reply to this email.

- ZenYourLife Team`, name, date, timeSlot)

	return s.Send(ctx, KindConfirmation, to, name, subject, body)
}

func (s *Service) SendReminder(ctx context.Context, to, name, date, timeSlot, treatment string) error {
	subject := "Reminder: your appointment tomorrow"
	if treatment == "" {
		treatment = "your appointment"
	}
	body := fmt.Sprintf(`Hi %s,

This is a reminder about %s tomorrow:

Date: %s
Time: %s

See you soon!

- ZenYourLife Team`, name, treatment, date, timeSlot)

	return s.Send(ctx, KindReminder, to, name, subject, body)
}

func (s *Service) SendCancellation(ctx context.Context, to, name, date, timeSlot string) error {
	subject := "Your booking has been cancelled"
	body := fmt.Sprintf(`Hi %s,

Your appointment has been cancelled:

Date: %s
Time: %s

We hope to see you another time.

- ZenYourLife Team`, name, date, timeSlot)

	return s.Send(ctx, KindCancellation, to, name, subject, body)
}
