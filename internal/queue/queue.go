package queue

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/brandhive/creator-journey-backend/internal/model"
	"github.com/brandhive/creator-journey-backend/internal/repository"
)

// TopicJourneyEvents carries campaign audit events to same-process
// subscribers (and mirrors the durable amqp queue of the same name).
const TopicJourneyEvents = "journey_events"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process queue with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %v\n", job.RetryCount, job.MaxRetries, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartJourneyEventSubscriber persists published journey events so the audit
// trail survives even when the amqp worker is down.
func StartJourneyEventSubscriber(q Queue, events repository.JourneyEventRepositoryInterface) {
	go func() {
		err := q.Subscribe(TopicJourneyEvents, func(payload any) error {
			ev, ok := payload.(model.JourneyEvent)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected model.JourneyEvent")
				return nil // no retry
			}

			log.Println("📩 Recording journey event:", ev.Kind, "for campaign", ev.CampaignID)

			if err := events.Insert(&ev); err != nil {
				log.Println("⚠️ Failed to record journey event:", err)
				return err // triggers retry in queue
			}
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for", TopicJourneyEvents, ":", err)
		}
	}()
}
