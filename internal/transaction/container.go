package transaction

import (
	"github.com/kabore-dev/prepa-concours/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, users user.UserRepository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, users)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
