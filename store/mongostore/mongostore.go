// Package mongostore implements the store contracts on MongoDB, one
// collection per entity. Students are looked up by their business id field;
// users by the _id ObjectID. Email uniqueness is enforced by a unique index
// created at connect time, so concurrent signups cannot both get through.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"student-backend/model"
	"student-backend/store"
)

const (
	studentCollection = "students"
	userCollection    = "users"
)

type Store struct {
	client   *mongo.Client
	students *mongo.Collection
	users    *mongo.Collection
}

// Connect dials MongoDB, pings it and prepares the collection handles plus
// the unique email index.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(dbName)
	s := &Store{
		client:   client,
		students: db.Collection(studentCollection),
		users:    db.Collection(userCollection),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) ListStudents(ctx context.Context) ([]model.Student, error) {
	cursor, err := s.students.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []model.Student{}
	for cursor.Next(ctx) {
		var student model.Student
		if err := cursor.Decode(&student); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return students, nil
}

func (s *Store) AddStudent(ctx context.Context, student model.Student) (model.Student, error) {
	student.Oid = primitive.NewObjectID()
	if _, err := s.students.InsertOne(ctx, student); err != nil {
		return model.Student{}, err
	}
	return student, nil
}

func (s *Store) UpdateStudent(ctx context.Context, id string, student model.Student) (model.Student, error) {
	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"id":         student.ID,
		"firstName":  student.FirstName,
		"lastName":   student.LastName,
		"middleName": student.MiddleName,
		"course":     student.Course,
		"year":       student.Year,
	}}

	var updated model.Student
	err := s.students.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Student{}, store.ErrNotFound
	}
	if err != nil {
		return model.Student{}, err
	}
	return updated, nil
}

func (s *Store) DeleteStudent(ctx context.Context, id string) error {
	res, err := s.students.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	cursor, err := s.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []model.User{}
	for cursor.Next(ctx) {
		var user model.User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, store.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) AddUser(ctx context.Context, user model.User) (model.User, error) {
	user.Id = primitive.NewObjectID()
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, store.ErrDuplicateEmail
		}
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id primitive.ObjectID, user model.User) (model.User, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"username": user.Username,
		"email":    user.Email,
		"password": user.Password,
	}}

	var updated model.User
	err := s.users.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, store.ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, store.ErrDuplicateEmail
		}
		return model.User{}, err
	}
	return updated, nil
}

func (s *Store) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
