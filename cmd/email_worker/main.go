package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jobdeck/jobdeck/config"
	"github.com/jobdeck/jobdeck/internal/infrastructure/blob"
	"github.com/jobdeck/jobdeck/pkg/helpers"
	"github.com/jobdeck/jobdeck/pkg/letters"
	"github.com/jobdeck/jobdeck/pkg/mailer"
)

// Consumes the letters queue: download the letter blob, clean the text,
// email it, and delete the blob on success. Failed sends are requeued with
// the blob left in place so nothing is lost.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQLettersQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	ctx := context.Background()

	gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
	if err != nil {
		log.Fatalf("gcs client: %v", err)
	}
	defer func() { _ = gcsClient.Close() }()
	store := blob.NewLetterStore(gcsClient, cfg.GCSBucket, cfg.LettersPrefix)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	if _, err := ch.QueueDeclare(cfg.RabbitMQLettersQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQLettersQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job mailer.LetterJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				logger.WithError(err).Warn("bad letter message, dropping")
				_ = msg.Nack(false, false)
				continue
			}
			if job.To == "" || job.BlobName == "" {
				logger.WithField("blob", job.BlobName).Warn("letter job missing recipient or blob, dropping")
				_ = msg.Nack(false, false)
				continue
			}

			letter, err := store.Load(ctx, job.BlobName)
			if err != nil {
				logger.WithError(err).WithField("blob", job.BlobName).Error("letter blob load failed")
				_ = msg.Nack(false, false)
				continue
			}

			subject := mailer.LetterSubject(letter.JobTitle)
			body := mailer.LetterBody(letter.Name, letters.Clean(letter.CoverLetter))

			c, cancel := context.WithTimeout(ctx, time.Minute)
			err = mg.SendWithRetry(c, job.To, subject, body)
			cancel()
			if err != nil {
				// Blob stays; requeue for another delivery attempt.
				logger.WithError(err).WithField("to", job.To).Error("letter send failed")
				_ = msg.Nack(false, true)
				continue
			}

			if err := store.Delete(ctx, job.BlobName); err != nil {
				logger.WithError(err).WithField("blob", job.BlobName).Warn("letter blob cleanup failed")
			}
			logger.WithField("to", job.To).Info("letter delivered")
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("email worker listening on queue=%s", cfg.RabbitMQLettersQueue)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
