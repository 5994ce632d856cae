package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student is one record in the students collection. The business-facing ID
// field is the lookup key for update and delete; Oid is the storage-assigned
// identifier and is never used for lookups. No field is required and ID is
// not unique, so resubmitting a create produces a duplicate record.
type Student struct {
	Oid        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ID         string             `json:"id" bson:"id"`
	FirstName  string             `json:"firstName" bson:"firstName"`
	LastName   string             `json:"lastName" bson:"lastName"`
	MiddleName string             `json:"middleName" bson:"middleName"`
	Course     string             `json:"course" bson:"course"`
	Year       string             `json:"year" bson:"year"`
}
