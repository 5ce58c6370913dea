package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/pavallion/turfbook/internal/config"
	"github.com/pavallion/turfbook/internal/models"
	"github.com/pavallion/turfbook/internal/notify"
	"github.com/pavallion/turfbook/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client
	AdminRepo      models.AdminRepo
	UserService    *services.UserService
	TurfService    *services.TurfService
	BookingService *services.BookingService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	cfg *config.Config,
) *Container {
	supa := models.SupabaseNewRepo(supabaseClient)
	mongoRepo := models.MongodbNewRepo(mongoDBClient)
	whatsapp := notify.NewWhatsApp(cfg.AdminWhatsAppNumber)

	userService := services.NewUserService(supa)
	turfService := services.NewTurfService(mongoRepo, cld)
	bookingService := services.NewBookingService(mongoRepo, mongoRepo, whatsapp)

	return &Container{
		Logger:         logger,
		Cloudinary:     cld,
		SupabaseClient: supabaseClient,
		MongoDBClient:  mongoDBClient,
		AdminRepo:      mongoRepo,
		UserService:    userService,
		TurfService:    turfService,
		BookingService: bookingService,
	}
}
