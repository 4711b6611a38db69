package store

import (
	"context"
	"errors"

	"github.com/avvvet/student-services/internal/studentsvc/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Name() string {
	return "MongoDB"
}

// Insert always creates a new document, prn is not unique here.
func (s *MongoStore) Insert(ctx context.Context, student models.Student) error {
	if s.coll == nil {
		return newError(KindConnection, "insert", ErrNotConnected)
	}

	student.ID = nil
	if _, err := s.coll.InsertOne(ctx, student); err != nil {
		return classifyMongo("insert", err)
	}

	return nil
}

func (s *MongoStore) ReadAll(ctx context.Context) ([]models.Student, error) {
	if s.coll == nil {
		return nil, newError(KindConnection, "read_all", ErrNotConnected)
	}

	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, classifyMongo("read_all", err)
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, classifyMongo("read_all", err)
	}

	return students, nil
}

func (s *MongoStore) ReadOne(ctx context.Context, prn string) (*models.Student, error) {
	if s.coll == nil {
		return nil, newError(KindConnection, "read_one", ErrNotConnected)
	}

	st := &models.Student{}
	if err := s.coll.FindOne(ctx, bson.M{"prn": prn}).Decode(st); err != nil {
		return nil, classifyMongo("read_one", err)
	}

	return st, nil
}

// Update touches the first document matching prn only.
func (s *MongoStore) Update(ctx context.Context, prn string, update models.StudentUpdate) error {
	if s.coll == nil {
		return newError(KindConnection, "update", ErrNotConnected)
	}

	res := s.coll.FindOneAndUpdate(ctx, bson.M{"prn": prn}, bson.M{
		"$set": bson.M{"name": update.Name, "department": update.Department},
	})
	if err := res.Err(); err != nil {
		return classifyMongo("update", err)
	}

	return nil
}

func (s *MongoStore) Delete(ctx context.Context, prn string) error {
	if s.coll == nil {
		return newError(KindConnection, "delete", ErrNotConnected)
	}

	if err := s.coll.FindOneAndDelete(ctx, bson.M{"prn": prn}).Err(); err != nil {
		return classifyMongo("delete", err)
	}

	return nil
}

func classifyMongo(op string, err error) *Error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return newError(KindNotFound, op, err)
	case errors.Is(err, mongo.ErrClientDisconnected),
		mongo.IsNetworkError(err),
		mongo.IsTimeout(err):
		return newError(KindConnection, op, err)
	}

	return newError(KindQuery, op, err)
}
