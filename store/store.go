// Package store defines the persistence contracts for the student and user
// collections. Implementations live in store/mongostore and store/memstore.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"student-backend/model"
)

var (
	// ErrNotFound is returned when an update or delete target does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user write would violate the
	// unique constraint on email.
	ErrDuplicateEmail = errors.New("email already in use")
)

// StudentStore operates on student records keyed by the business id field,
// first match. List order is insertion order.
type StudentStore interface {
	ListStudents(ctx context.Context) ([]model.Student, error)
	AddStudent(ctx context.Context, s model.Student) (model.Student, error)
	UpdateStudent(ctx context.Context, id string, s model.Student) (model.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

// UserStore operates on user records keyed by the storage-assigned identifier.
type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	FindUserByEmail(ctx context.Context, email string) (model.User, error)
	AddUser(ctx context.Context, u model.User) (model.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, u model.User) (model.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// Store is what main wires into the controllers.
type Store interface {
	StudentStore
	UserStore
}
