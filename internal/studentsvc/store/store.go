package store

import (
	"context"

	"github.com/avvvet/student-services/internal/studentsvc/models"
)

// StudentStore is the capability both adapters expose to the service layer.
type StudentStore interface {
	// Name is the human readable store name used in response messages.
	Name() string
	Insert(ctx context.Context, student models.Student) error
	ReadAll(ctx context.Context) ([]models.Student, error)
	ReadOne(ctx context.Context, prn string) (*models.Student, error)
	Update(ctx context.Context, prn string, update models.StudentUpdate) error
	Delete(ctx context.Context, prn string) error
}
