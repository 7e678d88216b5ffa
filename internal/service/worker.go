package service

import (
	"log"

	"github.com/brandhive/creator-journey-backend/internal/model"
)

// JourneyEventRecorder defines the methods the worker needs
type JourneyEventRecorder interface {
	Insert(ev *model.JourneyEvent) error
}

// Worker persists journey events fed through a channel
type Worker struct {
	Events  JourneyEventRecorder
	JobChan <-chan model.JourneyEvent
}

// Constructor
func NewWorker(events JourneyEventRecorder, jobChan <-chan model.JourneyEvent) *Worker {
	return &Worker{
		Events:  events,
		JobChan: jobChan,
	}
}

// Start begins processing jobs
func (w *Worker) Start() {
	for ev := range w.JobChan {
		if err := w.Events.Insert(&ev); err != nil {
			log.Println("Failed to record journey event:", err)
			continue
		}
	}
}
