package composition

import (
	"context"
	"errors"
	"fmt"

	"compositions/pkg/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const Collection = "pastcompositions"

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection(Collection),
	}
}

// joined is what the owner lookup stage decodes into.
type joined struct {
	Record `bson:",inline"`
	Owner  []user.User `bson:"owner"`
}

func (j *joined) resolve() (*Composition, error) {
	if len(j.Owner) != 1 {
		return nil, fmt.Errorf("composition %s: %w", j.ID.Hex(), ErrOwnerUnresolved)
	}
	return &Composition{Record: j.Record, Owner: j.Owner[0]}, nil
}

// withOwner builds the fetch-and-join pipeline every read goes through.
func withOwner(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: user.Collection},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
	}
}

func (r *MongoRepo) Create(ctx context.Context, rec *Record) error {
	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return fmt.Errorf("failed to insert composition: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to convert inserted ID to ObjectID")
	}
	rec.ID = oid

	return nil
}

func (r *MongoRepo) FindAll(ctx context.Context) ([]*Composition, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRepo) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*Composition, error) {
	return r.find(ctx, bson.M{"user": ownerID})
}

func (r *MongoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Composition, error) {
	list, err := r.find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNotFound
	}
	return list[0], nil
}

func (r *MongoRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete composition: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *MongoRepo) find(ctx context.Context, match bson.M) ([]*Composition, error) {
	cursor, err := r.collection.Aggregate(ctx, withOwner(match))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch compositions: %w", err)
	}
	defer cursor.Close(ctx)

	list := make([]*Composition, 0)
	for cursor.Next(ctx) {
		var j joined
		if err := cursor.Decode(&j); err != nil {
			return nil, fmt.Errorf("failed to decode composition: %w", err)
		}
		c, err := j.resolve()
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch compositions: %w", err)
	}

	return list, nil
}
