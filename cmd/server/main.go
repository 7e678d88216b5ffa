package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/brandhive/creator-journey-backend/internal/controller"
	"github.com/brandhive/creator-journey-backend/internal/db"
	"github.com/brandhive/creator-journey-backend/internal/handler"
	"github.com/brandhive/creator-journey-backend/internal/queue"
	"github.com/brandhive/creator-journey-backend/internal/repository"
	"github.com/brandhive/creator-journey-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()
	q := queue.NewInMemoryQueue()

	campaignRepo := &repository.CampaignRepository{DB: db.DB}
	slotRepo := &repository.SlotRepository{DB: db.DB}
	creatorRepo := &repository.CreatorRepository{DB: db.DB}
	eventRepo := &repository.JourneyEventRepository{DB: db.DB}
	queue.StartJourneyEventSubscriber(q, eventRepo)

	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		SlotRepo:     slotRepo,
	}
	slotService := &service.SlotService{
		SlotRepo:    slotRepo,
		CreatorRepo: creatorRepo,
		Queue:       q,
	}
	journeyService := &service.JourneyService{
		CampaignRepo: campaignRepo,
		SlotRepo:     slotRepo,
		Queue:        q,
	}

	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
		SlotService:     slotService,
		JourneyService:  journeyService,
	}

	campaignHandler := &handler.CampaignHandler{
		SlotRepo:        slotRepo,
		CampaignService: campaignService,
		JourneyService:  journeyService,
	}

	r := chi.NewRouter()

	// Campaign routes
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Get("/campaigns", campaignHandler.ListCampaignsHandler)
	r.Get("/campaigns/{id}", campaignHandler.GetCampaignHandlerWithStats)
	r.Get("/campaigns/{id}/slots", campaignHandler.ListSlotsHandler)
	r.Put("/campaigns/{id}/slots", campaignController.SaveSlots)
	r.Get("/campaigns/{id}/finalization-check", campaignHandler.FinalizationCheckHandler)
	r.Post("/campaigns/{id}/status", campaignController.UpdateStatus)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
