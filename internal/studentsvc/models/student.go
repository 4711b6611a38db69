package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student is the record shared by both stores. PRN is the logical key.
type Student struct {
	ID         *primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"` // document store only
	Name       string              `json:"name" bson:"name"`
	PRN        string              `json:"prn" bson:"prn"`
	Department string              `json:"department" bson:"department"`
}

// StudentUpdate carries the mutable fields, prn comes from the path.
type StudentUpdate struct {
	Name       string `json:"name" bson:"name"`
	Department string `json:"department" bson:"department"`
}
