// Package memstore is an in-memory implementation of the store contracts:
// a mutex-guarded pair of slices, kept in insertion order. It backs the test
// suite and the STORE=memory development mode; records are lost on restart.
package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"student-backend/model"
	"student-backend/store"
)

type Store struct {
	mutex    sync.RWMutex
	students []model.Student
	users    []model.User
}

func New() *Store {
	return &Store{
		students: []model.Student{},
		users:    []model.User{},
	}
}

func (s *Store) ListStudents(_ context.Context) ([]model.Student, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]model.Student, len(s.students))
	copy(out, s.students)
	return out, nil
}

func (s *Store) AddStudent(_ context.Context, student model.Student) (model.Student, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// No uniqueness check on the id field: duplicates are accepted.
	student.Oid = primitive.NewObjectID()
	s.students = append(s.students, student)
	return student, nil
}

func (s *Store) UpdateStudent(_ context.Context, id string, student model.Student) (model.Student, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.students {
		if s.students[i].ID == id {
			student.Oid = s.students[i].Oid
			s.students[i] = student
			return student, nil
		}
	}
	return model.Student{}, store.ErrNotFound
}

func (s *Store) DeleteStudent(_ context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.students {
		if s.students[i].ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, store.ErrNotFound
}

func (s *Store) AddUser(_ context.Context, user model.User) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// The duplicate check runs inside the write lock, the in-memory
	// equivalent of the unique index mongostore puts on email.
	for _, u := range s.users {
		if u.Email == user.Email {
			return model.User{}, store.ErrDuplicateEmail
		}
	}
	user.Id = primitive.NewObjectID()
	s.users = append(s.users, user)
	return user, nil
}

func (s *Store) UpdateUser(_ context.Context, id primitive.ObjectID, user model.User) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email && u.Id != id {
			return model.User{}, store.ErrDuplicateEmail
		}
	}
	for i := range s.users {
		if s.users[i].Id == id {
			user.Id = id
			s.users[i] = user
			return user, nil
		}
	}
	return model.User{}, store.ErrNotFound
}

func (s *Store) DeleteUser(_ context.Context, id primitive.ObjectID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.users {
		if s.users[i].Id == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
