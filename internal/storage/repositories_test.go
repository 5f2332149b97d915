package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/parser"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/zone"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(context.Background(), db, "sqlite"))
	return db
}

func sampleRecord() *listing.Record {
	photos := "https://media.example.com/a.jpg, https://media.example.com/b.jpg"
	return &listing.Record{
		Submission: parser.Submission{
			WarehouseOwnerType: "company",
			WarehouseType:      "PEB",
			Address:            "Soukya Road, Near Hoskote",
			City:               "Bangalore",
			State:              "Karnataka",
			PostalCode:         "562114",
			ContactPerson:      "Ravi",
			ContactNumber:      "9845226666",
			TotalSpaceSqft:     []int{50000, 180000},
			Compliances:        "CLU, Fire NOC",
			RatePerSqft:        "40",
			UploadedBy:         "Ops",
			FireNocAvailable:   parser.ParseYesNo("y"),
			FireSafetyMeasures: "Hydrants, sprinklers",
		},
		Zone:   zone.South,
		Photos: &photos,
	}
}

func TestWarehouseRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewWarehouseRepository(db)

	id, err := repo.Create(context.Background(), sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	wh, data, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", wh.City)
	assert.Equal(t, "SOUTH", wh.Zone)
	assert.Equal(t, []int{50000, 180000}, wh.TotalSpaceSqft)
	require.NotNil(t, wh.Photos)
	assert.Contains(t, *wh.Photos, "a.jpg")
	require.NotNil(t, data)
	assert.Equal(t, id, data.WarehouseID)
	assert.Equal(t, "company", data.WarehouseOwnerType)
	assert.Equal(t, "yes", data.FireNocAvailable)
}

func TestWarehouseRepository_IDsAreSequential(t *testing.T) {
	db := openTestDB(t)
	repo := NewWarehouseRepository(db)

	first, err := repo.Create(context.Background(), sampleRecord())
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestWarehouseRepository_NoPhotos(t *testing.T) {
	db := openTestDB(t)
	repo := NewWarehouseRepository(db)

	rec := sampleRecord()
	rec.Photos = nil
	id, err := repo.Create(context.Background(), rec)
	require.NoError(t, err)

	wh, _, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, wh.Photos)
}

func TestWarehouseRepository_GetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewWarehouseRepository(db)

	_, _, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDraftRepository_Lifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewDraftRepository(db)
	ctx := context.Background()

	draft, err := repo.Get(ctx, "+911234567890")
	require.NoError(t, err)
	assert.Nil(t, draft)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	put := &listing.Draft{
		Sender:     "+911234567890",
		Status:     listing.StatusAwaitingMedia,
		Submission: &parser.Submission{City: "Pune", State: "Maharashtra"},
		MediaURLs:  []string{"https://media.example.com/a.jpg"},
		CreatedAt:  created,
	}
	require.NoError(t, repo.Put(ctx, put))

	got, err := repo.Get(ctx, "+911234567890")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, listing.StatusAwaitingMedia, got.Status)
	assert.Equal(t, "Pune", got.Submission.City)
	assert.Equal(t, put.MediaURLs, got.MediaURLs)
	assert.True(t, got.CreatedAt.Equal(created))

	put.MediaURLs = append(put.MediaURLs, "https://media.example.com/b.jpg")
	require.NoError(t, repo.Put(ctx, put))
	got, err = repo.Get(ctx, "+911234567890")
	require.NoError(t, err)
	assert.Len(t, got.MediaURLs, 2)

	require.NoError(t, repo.Delete(ctx, "+911234567890"))
	got, err = repo.Get(ctx, "+911234567890")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Delete(ctx, "+911234567890"))
}

func TestMessageLogRepository_AppendAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewMessageLogRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, listing.LogEntry{
		Sender: "+911234567890", Body: "City: Pune", Status: listing.StatusFailure,
		Error: "missing required fields: address",
	}))
	require.NoError(t, repo.Append(ctx, listing.LogEntry{
		Sender: "+911234567890", Body: "close", Status: listing.StatusSuccess,
	}))
	require.NoError(t, repo.Append(ctx, listing.LogEntry{
		Sender: "+919999999999", Body: "hi", Status: listing.StatusUnverified,
	}))

	logs, err := repo.ListBySender(ctx, "+911234567890", 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, listing.StatusSuccess, logs[0].Status)
	assert.Equal(t, listing.StatusFailure, logs[1].Status)
	assert.Contains(t, logs[1].ErrorMessage, "address")
}

func TestVerifiedNumberRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewVerifiedNumberRepository(db)
	ctx := context.Background()

	allowed, err := repo.IsAllowed(ctx, "+911234567890")
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, repo.Add(ctx, "+911234567890", "ops team"))
	allowed, err = repo.IsAllowed(ctx, "+911234567890")
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, repo.Add(ctx, "+911234567890", "renamed"))
	numbers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.Equal(t, "renamed", numbers[0].Label)

	require.NoError(t, repo.Remove(ctx, "+911234567890"))
	allowed, err = repo.IsAllowed(ctx, "+911234567890")
	require.NoError(t, err)
	assert.False(t, allowed)
}
