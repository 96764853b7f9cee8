// Package repository defines the persistence contracts of the curriculum
// domain. Implementations translate backend errors into the errs taxonomy:
// Save reports DuplicateEntityError on unique-constraint violations, Update
// and Delete report EntityNotFoundError on missing ids, and everything
// infrastructural becomes DatabaseError. Lookups return (nil, nil) when the
// aggregate is missing. Paged lists take a 1-indexed page; an out-of-range
// page yields the total count and an empty slice.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kikiru328/LLearn-sub001/internal/domain/entity"
)

// UserRepository persists User aggregates.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountActive(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, page, itemsPerPage int) (int64, []*entity.User, error)
}
