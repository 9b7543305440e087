package mongostore

import (
	"context"
	"testing"
	"time"

	"bookingsite/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get decodes document", func(mt *mtest.T) {
		created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.bookings", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "b1"},
			{Key: "date", Value: "2024-06-01"},
			{Key: "kids", Value: int32(2)},
			{Key: "createdAt", Value: primitive.NewDateTimeFromTime(created)},
			{Key: "slots", Value: bson.D{{Key: "09:00", Value: bson.D{{Key: "booked", Value: int32(3)}}}}},
		}))

		doc, err := New(mt.DB).Get(context.Background(), "bookings", "b1")
		require.NoError(mt, err)
		assert.Equal(mt, "b1", doc.ID)
		assert.NotContains(mt, doc.Data, "_id")
		assert.Equal(mt, "2024-06-01", doc.Data["date"])
		assert.Equal(mt, int64(2), doc.Data["kids"])
		assert.True(mt, created.Equal(doc.Data["createdAt"].(time.Time)))

		slots := doc.Data["slots"].(map[string]any)
		assert.Equal(mt, int64(3), slots["09:00"].(map[string]any)["booked"])
	})

	mt.Run("get missing document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.bookings", mtest.FirstBatch))

		_, err := New(mt.DB).Get(context.Background(), "bookings", "nope")
		assert.ErrorIs(mt, err, database.ErrNotFound)
	})

	mt.Run("add returns generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := New(mt.DB).Add(context.Background(), "bookings", map[string]any{"date": "2024-06-01"})
		require.NoError(mt, err)
		assert.NotEmpty(mt, id)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
		inserted := evt.Command.Lookup("documents").Array().Index(0).Value().Document()
		assert.Equal(mt, id, inserted.Lookup("_id").StringValue())
	})

	mt.Run("add surfaces write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := New(mt.DB).Add(context.Background(), "admins", map[string]any{"email": "a@example.com"})
		assert.Error(mt, err)
	})

	mt.Run("create upserts with $setOnInsert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "2024-06-01"}}}},
		))

		created, err := New(mt.DB).Create(context.Background(), "availability", "2024-06-01", map[string]any{"date": "2024-06-01"})
		require.NoError(mt, err)
		assert.True(mt, created)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "update", evt.CommandName)
		update := evt.Command.Lookup("updates").Array().Index(0).Value().Document()
		assert.Equal(mt, "2024-06-01", update.Lookup("q", "_id").StringValue())
		assert.Equal(mt, "2024-06-01", update.Lookup("u", "$setOnInsert", "date").StringValue())
		_, err = update.LookupErr("u", "$setOnInsert", "_id")
		assert.Error(mt, err)
		assert.True(mt, update.Lookup("upsert").Boolean())
	})

	mt.Run("create leaves an existing document alone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}))

		created, err := New(mt.DB).Create(context.Background(), "availability", "2024-06-01", map[string]any{"date": "2024-06-01"})
		require.NoError(mt, err)
		assert.False(mt, created)
	})

	mt.Run("merge on missing document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := New(mt.DB).Merge(context.Background(), "bookings", "nope", map[string]any{"status": "confirmed"})
		assert.ErrorIs(mt, err, database.ErrNotFound)
	})

	mt.Run("merge existing document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := New(mt.DB).Merge(context.Background(), "bookings", "b1", map[string]any{"status": "confirmed"})
		assert.NoError(mt, err)
	})

	mt.Run("increment uses $inc on the dotted path", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := New(mt.DB).Increment(context.Background(), "availability", "2024-06-01", []string{"slots", "09:00", "booked"}, 4)
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		update := evt.Command.Lookup("updates").Array().Index(0).Value().Document()
		assert.Equal(mt, "2024-06-01", update.Lookup("q", "_id").StringValue())
		assert.Equal(mt, int64(4), update.Lookup("u", "$inc", "slots.09:00.booked").Int64())
	})

	mt.Run("increment on missing document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := New(mt.DB).Increment(context.Background(), "availability", "2024-06-01", []string{"slots", "09:00", "booked"}, 1)
		assert.ErrorIs(mt, err, database.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)
		store := New(mt.DB)

		assert.NoError(mt, store.Delete(context.Background(), "bookings", "b1"))
		assert.ErrorIs(mt, store.Delete(context.Background(), "bookings", "b1"), database.ErrNotFound)
	})

	mt.Run("query applies filters sort and limit", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.bookings", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "b2"}, {Key: "date", Value: "2024-06-01"}},
			bson.D{{Key: "_id", Value: "b1"}, {Key: "date", Value: "2024-06-01"}},
		))

		docs, err := New(mt.DB).Query(context.Background(), "bookings",
			database.Query{OrderBy: "createdAt", Descending: true, Limit: 5}.Where("date", "2024-06-01"))
		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, "b2", docs[0].ID)
		assert.Equal(mt, "b1", docs[1].ID)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, "2024-06-01", evt.Command.Lookup("filter", "date").StringValue())
		assert.Equal(mt, int32(-1), evt.Command.Lookup("sort", "createdAt").Int32())
	})

	mt.Run("query surfaces command errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := New(mt.DB).Query(context.Background(), "bookings", database.Query{})
		assert.Error(mt, err)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		err := New(mt.DB).EnsureIndexes(context.Background(), []database.IndexSpec{
			{Collection: "bookings", Name: "date_idx", Fields: []string{"date"}},
			{Collection: "bookings", Name: "created_at_desc_idx", Fields: []string{"createdAt"}, Descending: true},
			{Collection: "admins", Name: "unique_email", Fields: []string{"email"}, Unique: true},
		})
		require.NoError(mt, err)

		first := mt.GetStartedEvent()
		require.NotNil(mt, first)
		assert.Equal(mt, "createIndexes", first.CommandName)
		assert.Equal(mt, "bookings", first.Command.Lookup("createIndexes").StringValue())
		second := mt.GetStartedEvent()
		require.NotNil(mt, second)
		assert.Equal(mt, "admins", second.Command.Lookup("createIndexes").StringValue())
	})
}
