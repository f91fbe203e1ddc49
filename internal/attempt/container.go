package attempt

import "gorm.io/gorm"

type AttemptContainer struct {
	Handler *Handler
	Service AttemptService
}

func NewAttemptContainer(db *gorm.DB) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
		Service: service,
	}
}
