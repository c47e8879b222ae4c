package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DevOuttaHeree/colabx-api/models"
)

const queryTimeout = 10 * time.Second

// UserStore is the access point to the users collection. Lookups that match
// nothing return mongo.ErrNoDocuments.
//
// There are no transactions here: the register flow's existence check plus
// insert, and the update flow's write plus re-read, are separate calls that
// can interleave under concurrent requests.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields models.UpdateFields) (int64, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

type MongoUserStore struct {
	users *mongo.Collection
}

func NewUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{users: db.Collection("users")}
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoUserStore) Update(ctx context.Context, id primitive.ObjectID, fields models.UpdateFields) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": setDocument(fields)})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (s *MongoUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func setDocument(fields models.UpdateFields) bson.M {
	set := bson.M{}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.City != nil {
		set["city"] = *fields.City
	}
	if fields.Skills != nil {
		set["skills"] = fields.Skills
	}
	if fields.Experience != nil {
		set["experience"] = *fields.Experience
	}
	if fields.Portfolio != nil {
		set["portfolio"] = *fields.Portfolio
	}
	if fields.ProfilePic != nil {
		set["profilePic"] = *fields.ProfilePic
	}
	return set
}
