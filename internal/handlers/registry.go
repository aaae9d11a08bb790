package handlers

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	PetHandler       *PetHandler
	CaregiverHandler *CaregiverHandler
	CatalogHandler   *CatalogHandler
	BookingHandler   *BookingHandler
	ReviewHandler    *ReviewHandler
	SearchHandler    *SearchHandler
	UploadHandler    *UploadHandler
}
