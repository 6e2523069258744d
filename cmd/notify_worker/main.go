// notify_worker drains the admin-alert queue and emails each alert to the
// operations address via Mailgun.
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

	"github.com/lmhoang06/waiedu-task-management/config"
	"github.com/lmhoang06/waiedu-task-management/pkg/notify"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; notify worker disabled (no emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQAlertQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" || cfg.AdminEmail == "" {
		log.Fatal("Mailgun or admin alert address not configured")
	}

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
	if _, err := ch.QueueDeclare(cfg.RabbitMQAlertQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQAlertQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := notify.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range msgs {
			var job notify.Job
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			subject := job.Subject
			if subject == "" {
				subject = "Admin alert: " + job.Type
			}

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			err := mg.Send(c, cfg.AdminEmail, subject, job.Text)
			cancel()
			if err != nil {
				log.Printf("send alert failed: %v", err)
				// requeue once via nack; broker redelivers
				_ = msg.Nack(false, !msg.Redelivered)
				continue
			}
			_ = msg.Ack(false)
		}
	}()

	log.Printf("notify worker consuming %q", cfg.RabbitMQAlertQueue)
	<-stop
	log.Println("shutting down notify worker")
	_ = ch.Close()
	<-done
}
