package services

import (
	"pawmatch_backend/internal/email"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer wires every service with its repositories. Handlers only
// ever see the interfaces.
type ServiceContainer struct {
	Auth      AuthService
	User      UserService
	Pet       PetService
	Caregiver CaregiverService
	Catalog   CatalogService
	Booking   BookingService
	Review    ReviewService
	Search    SearchService
	Upload    UploadService

	// Repositories are exposed for the background workers and seeding.
	UserRepo    repositories.UserRepository
	BookingRepo repositories.BookingRepository
	ServiceRepo repositories.ServiceRepository
}

func NewServiceContainer(db *gorm.DB, store storage.Storage, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	petRepo := repositories.NewPetRepository(db)
	caregiverRepo := repositories.NewCaregiverRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	uploadRepo := repositories.NewUploadRepository(db)

	return &ServiceContainer{
		Auth:      NewAuthService(userRepo, caregiverRepo),
		User:      NewUserService(userRepo),
		Pet:       NewPetService(petRepo),
		Caregiver: NewCaregiverService(caregiverRepo, serviceRepo),
		Catalog:   NewCatalogService(serviceRepo),
		Booking:   NewBookingService(bookingRepo, petRepo, caregiverRepo, serviceRepo, mailer),
		Review:    NewReviewService(reviewRepo, bookingRepo),
		Search:    NewSearchService(caregiverRepo),
		Upload:    NewUploadService(uploadRepo, store),

		UserRepo:    userRepo,
		BookingRepo: bookingRepo,
		ServiceRepo: serviceRepo,
	}
}
