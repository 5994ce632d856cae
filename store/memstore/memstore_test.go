package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"student-backend/model"
	"student-backend/store"
)

func TestStudentFlow(t *testing.T) {
	s := New()
	ctx := context.Background()

	students, err := s.ListStudents(ctx)
	require.NoError(t, err)
	require.Empty(t, students)

	ana, err := s.AddStudent(ctx, model.Student{ID: "S1", FirstName: "Ana", LastName: "Cruz", Course: "CS", Year: "2"})
	require.NoError(t, err)
	require.False(t, ana.Oid.IsZero())

	_, err = s.AddStudent(ctx, model.Student{ID: "S2", FirstName: "Ben", Year: "1"})
	require.NoError(t, err)

	students, err = s.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.Equal(t, "S1", students[0].ID)
	require.Equal(t, "S2", students[1].ID)

	updated, err := s.UpdateStudent(ctx, "S1", model.Student{ID: "S1", FirstName: "Ana", LastName: "Cruz", Course: "CS", Year: "3"})
	require.NoError(t, err)
	require.Equal(t, "3", updated.Year)
	require.Equal(t, ana.Oid, updated.Oid)

	_, err = s.UpdateStudent(ctx, "S9", model.Student{ID: "S9"})
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.DeleteStudent(ctx, "S1"))
	require.ErrorIs(t, s.DeleteStudent(ctx, "S1"), store.ErrNotFound)

	students, err = s.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Equal(t, "S2", students[0].ID)
}

func TestDuplicateStudentIDAccepted(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.AddStudent(ctx, model.Student{ID: "S1"})
	require.NoError(t, err)
	_, err = s.AddStudent(ctx, model.Student{ID: "S1"})
	require.NoError(t, err)

	students, err := s.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)

	// Update and delete touch the first match only.
	_, err = s.UpdateStudent(ctx, "S1", model.Student{ID: "S1", Course: "IT"})
	require.NoError(t, err)
	students, _ = s.ListStudents(ctx)
	require.Equal(t, "IT", students[0].Course)
	require.Equal(t, "", students[1].Course)

	require.NoError(t, s.DeleteStudent(ctx, "S1"))
	students, _ = s.ListStudents(ctx)
	require.Len(t, students, 1)
}

func TestUserFlow(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.FindUserByEmail(ctx, "kim@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	kim, err := s.AddUser(ctx, model.User{Username: "kim", Email: "kim@example.com", Password: "hash1"})
	require.NoError(t, err)
	require.False(t, kim.Id.IsZero())

	_, err = s.AddUser(ctx, model.User{Username: "other", Email: "kim@example.com", Password: "hash2"})
	require.ErrorIs(t, err, store.ErrDuplicateEmail)

	found, err := s.FindUserByEmail(ctx, "kim@example.com")
	require.NoError(t, err)
	require.Equal(t, kim.Id, found.Id)

	updated, err := s.UpdateUser(ctx, kim.Id, model.User{Username: "kim2", Email: "kim2@example.com", Password: "hash3"})
	require.NoError(t, err)
	require.Equal(t, kim.Id, updated.Id)
	require.Equal(t, "kim2", updated.Username)

	_, err = s.UpdateUser(ctx, primitive.NewObjectID(), model.User{Email: "nobody@example.com"})
	require.ErrorIs(t, err, store.ErrNotFound)

	lee, err := s.AddUser(ctx, model.User{Username: "lee", Email: "lee@example.com", Password: "hash4"})
	require.NoError(t, err)

	// Updating onto an email another user holds hits the uniqueness check.
	_, err = s.UpdateUser(ctx, lee.Id, model.User{Username: "lee", Email: "kim2@example.com", Password: "hash4"})
	require.ErrorIs(t, err, store.ErrDuplicateEmail)

	require.NoError(t, s.DeleteUser(ctx, lee.Id))
	require.ErrorIs(t, s.DeleteUser(ctx, lee.Id), store.ErrNotFound)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}
