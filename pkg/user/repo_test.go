package user_test

import (
	"context"
	"testing"

	"compositions/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := user.NewMongoRepo(mt.DB)

		u := &user.User{Username: "Bradley", Email: "brad@netsky.com", Password: "hashed_pass"}
		err := repo.Create(context.Background(), u)

		assert.NoError(t, err)
		assert.False(t, u.ID.IsZero())
	})

	mt.Run("duplicate username", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := user.NewMongoRepo(mt.DB)

		err := repo.Create(context.Background(), &user.User{Username: "Bradley"})

		assert.ErrorIs(t, err, user.ErrUserExists)
	})
}

func TestMongoRepo_FindByUsername(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "compositions.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "Bradley"},
			{Key: "email", Value: "brad@netsky.com"},
			{Key: "password", Value: "hashed_pass"},
		}))
		repo := user.NewMongoRepo(mt.DB)

		u, err := repo.FindByUsername(context.Background(), "Bradley")

		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "hashed_pass", u.Password)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "compositions.users", mtest.FirstBatch))
		repo := user.NewMongoRepo(mt.DB)

		u, err := repo.FindByUsername(context.Background(), "ghost")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	mt.Run("store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Message: "some error",
		}))
		repo := user.NewMongoRepo(mt.DB)

		u, err := repo.FindByUsername(context.Background(), "whoever")

		assert.Nil(t, u)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestMongoRepo_EnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := user.NewMongoRepo(mt.DB)

		assert.NoError(t, repo.EnsureIndexes(context.Background()))
	})

	mt.Run("error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Message: "index conflict",
		}))
		repo := user.NewMongoRepo(mt.DB)

		err := repo.EnsureIndexes(context.Background())
		assert.ErrorContains(t, err, "index conflict")
	})
}
