package repository_test

import (
	"context"
	"neodrive/infras/otel/mocks"
	"neodrive/shared/dto"
	"neodrive/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newRepository(mt *mtest.T) repository.Repository[bson.M] {
	return repository.NewRepository[bson.M]("car", mt.Coll, mocks.NewOtel())
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestRepository_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("generated identifier is acknowledged", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := repo.Insert(context.Background(), bson.M{"carModel": "Civic", "dailyRentalPrice": 40})
		require.NoError(mt, err)

		assert.True(mt, res.Acknowledged)
		assert.IsType(mt, primitive.ObjectID{}, res.InsertedID)
	})

	mt.Run("caller supplied identifier is kept", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := repo.Insert(context.Background(), bson.M{"_id": "booking-1"})
		require.NoError(mt, err)
		assert.Equal(mt, "booking-1", res.InsertedID)
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Insert(context.Background(), bson.M{"_id": "booking-1"})
		assert.Error(mt, err)
	})
}

func TestRepository_Get(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("document found", func(mt *mtest.T) {
		repo := newRepository(mt)
		oid := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "carModel", Value: "Civic"},
		}))

		res, err := repo.Get(context.Background(), bson.M{"_id": oid})
		require.NoError(mt, err)
		assert.Equal(mt, oid, res["_id"])
		assert.Equal(mt, "Civic", res["carModel"])
	})

	mt.Run("no document returns nil", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		res, err := repo.Get(context.Background(), bson.M{"_id": primitive.NewObjectID()})
		require.NoError(mt, err)
		assert.Nil(mt, res)
	})

	mt.Run("filter is required", func(mt *mtest.T) {
		repo := newRepository(mt)

		_, err := repo.Get(context.Background(), bson.M{})
		assert.Error(mt, err)
	})
}

func TestRepository_GetAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("all documents", func(mt *mtest.T) {
		repo := newRepository(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "carModel", Value: "Civic"}, {Key: "availabilityDate", Value: "2024-06-01"}},
			bson.D{{Key: "carModel", Value: "Corolla"}, {Key: "availabilityDate", Value: "2024-05-01"}},
		))

		res, err := repo.GetAll(context.Background(), dto.QueryParams{
			Limit:   6,
			SortBy:  "availabilityDate",
			SortDir: dto.SortDirDesc,
		}, nil)
		require.NoError(mt, err)
		require.Len(mt, res, 2)
		assert.Equal(mt, "Civic", res[0]["carModel"])
		assert.Equal(mt, "Corolla", res[1]["carModel"])

		find := mt.GetStartedEvent()
		require.NotNil(mt, find)
		assert.Equal(mt, "find", find.CommandName)
		assert.Equal(mt, int64(6), find.Command.Lookup("limit").AsInt64())
		assert.Equal(mt, int64(-1), find.Command.Lookup("sort", "availabilityDate").AsInt64())
	})

	mt.Run("zero params send no sort or limit", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.GetAll(context.Background(), dto.QueryParams{}, nil)
		require.NoError(mt, err)

		find := mt.GetStartedEvent()
		require.NotNil(mt, find)

		_, err = find.Command.LookupErr("sort")
		assert.Error(mt, err)

		_, err = find.Command.LookupErr("limit")
		assert.Error(mt, err)
	})

	mt.Run("no documents returns an empty slice", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		res, err := repo.GetAll(context.Background(), dto.QueryParams{}, bson.M{"booked_user": "nobody@example.com"})
		require.NoError(mt, err)
		assert.NotNil(mt, res)
		assert.Empty(mt, res)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad sort specification",
		}))

		_, err := repo.GetAll(context.Background(), dto.QueryParams{}, nil)
		assert.Error(mt, err)
	})
}

func TestRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched and modified", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.Update(context.Background(), bson.M{"bookingStatus": "Cancel"}, bson.M{"_id": "booking-1"})
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)

		update := mt.GetStartedEvent()
		require.NotNil(mt, update)
		assert.Equal(mt, "update", update.CommandName)
		assert.Equal(mt, "booking-1", update.Command.Lookup("updates", "0", "q", "_id").StringValue())

		set := update.Command.Lookup("updates", "0", "u", "$set").Document()
		assert.Equal(mt, "Cancel", set.Lookup("bookingStatus").StringValue())

		elems, err := set.Elements()
		require.NoError(mt, err)
		assert.Len(mt, elems, 1)
	})

	mt.Run("nothing matched", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := repo.Update(context.Background(), bson.M{"bookingStatus": "Cancel"}, bson.M{"_id": "missing"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), res.MatchedCount)
	})

	mt.Run("filter is required", func(mt *mtest.T) {
		repo := newRepository(mt)

		_, err := repo.Update(context.Background(), bson.M{"bookingStatus": "Cancel"}, nil)
		assert.Error(mt, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("document removed", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := repo.Delete(context.Background(), bson.M{"_id": "booking-1"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.DeletedCount)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "interrupted at shutdown",
		}))

		_, err := repo.Delete(context.Background(), bson.M{"_id": "booking-1"})
		assert.Error(mt, err)
	})
}
