package integration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/cache"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/observability"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/parser"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/storage"
)

const testSender = "+918076708542"

type stubUploader struct{ calls int }

func (u *stubUploader) Upload(_ context.Context, _ listing.MediaRef) (string, error) {
	u.calls++
	return fmt.Sprintf("https://media.example.com/media_%d.jpg", u.calls), nil
}

func listingMessage(mediaAvailable string) string {
	return fmt.Sprintf(`Warehouse Owner Type: company
Media Available: %s
Address: Soukya Road, Near Hoskote
City: Bangalore
State: Karnataka
Postal Code: 562114
Contact Person: Ravi
Contact Number: 9845226666
Total Space: 50000 sqft
Fire NOC Available: Y
Fire Safety Measures: Hydrants
Compliances: CLU
Rate Per Sqft: 40
Uploaded by: Ops`, mediaAvailable)
}

func openPostgres(t *testing.T, connStr string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.Migrate(context.Background(), db, "postgres"))
	return db
}

// TestListingFlow_Postgres drives the full draft lifecycle against real
// Postgres and Redis: parse, draft, media, close, committed record.
func TestListingFlow_Postgres(t *testing.T) {
	setup := SetupTestContainers(t)
	db := openPostgres(t, setup.PostgresConnStr)
	ctx := context.Background()

	store, err := cache.NewRedisStore(cache.RedisConfig{Addr: setup.RedisAddr})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	warehouses := storage.NewWarehouseRepository(db)
	uploader := &stubUploader{}
	manager := listing.NewManager(observability.Nop(), parser.New(parser.Config{}),
		store, uploader, warehouses, storage.NewMessageLogRepository(db),
		listing.ManagerConfig{})

	res := manager.Handle(ctx, listing.Event{Sender: testSender, Text: listingMessage("y")})
	assert.Contains(t, res.Reply, "send your media")

	res = manager.Handle(ctx, listing.Event{Sender: testSender, Media: []listing.MediaRef{
		{URL: "https://api.twilio.com/img1.jpg", ContentType: "image/jpeg"},
	}})
	assert.Contains(t, res.Reply, "1 so far")

	res = manager.Handle(ctx, listing.Event{Sender: testSender, Media: []listing.MediaRef{
		{URL: "https://api.twilio.com/img2.jpg", ContentType: "image/jpeg"},
	}})
	assert.Contains(t, res.Reply, "2 so far")

	res = manager.Handle(ctx, listing.Event{Sender: testSender, Text: "close"})
	assert.Contains(t, res.Reply, "All done")
	require.NotZero(t, res.RecordID)

	wh, data, err := warehouses.GetByID(ctx, res.RecordID)
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", wh.City)
	assert.Equal(t, "SOUTH", wh.Zone)
	require.NotNil(t, wh.Photos)
	assert.Equal(t, "https://media.example.com/media_1.jpg, https://media.example.com/media_2.jpg", *wh.Photos)
	require.NotNil(t, data)
	assert.Equal(t, "yes", data.FireNocAvailable)

	draft, err := store.Get(ctx, testSender)
	require.NoError(t, err)
	assert.Nil(t, draft)

	logs, err := storage.NewMessageLogRepository(db).ListBySender(ctx, testSender, 10)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, listing.StatusSuccess, logs[0].Status)
}

// TestDraftRepository_Postgres exercises the database-backed session store on
// the real dialect, including the upsert path.
func TestDraftRepository_Postgres(t *testing.T) {
	setup := SetupTestContainers(t)
	db := openPostgres(t, setup.PostgresConnStr)
	ctx := context.Background()

	repo := storage.NewDraftRepository(db)
	draft := &listing.Draft{
		Sender:     testSender,
		Status:     listing.StatusAwaitingMedia,
		Submission: &parser.Submission{City: "Bangalore"},
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Put(ctx, draft))

	draft.MediaURLs = []string{"https://m/1.jpg"}
	require.NoError(t, repo.Put(ctx, draft))

	got, err := repo.Get(ctx, testSender)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"https://m/1.jpg"}, got.MediaURLs)

	require.NoError(t, repo.Delete(ctx, testSender))
	got, err = repo.Get(ctx, testSender)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestRedisStore_Expiry confirms an old draft is discarded on the next event.
func TestRedisStore_Expiry(t *testing.T) {
	setup := SetupTestContainers(t)
	db := openPostgres(t, setup.PostgresConnStr)
	ctx := context.Background()

	store, err := cache.NewRedisStore(cache.RedisConfig{Addr: setup.RedisAddr})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	sub, err := parser.New(parser.Config{}).Parse(listingMessage("y"))
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, &listing.Draft{
		Sender:     testSender,
		Status:     listing.StatusAwaitingMedia,
		Submission: sub,
		CreatedAt:  time.Now().Add(-time.Hour),
	}))

	manager := listing.NewManager(observability.Nop(), parser.New(parser.Config{}),
		store, &stubUploader{}, storage.NewWarehouseRepository(db),
		storage.NewMessageLogRepository(db), listing.ManagerConfig{})

	res := manager.Handle(ctx, listing.Event{Sender: testSender, Text: "close"})
	assert.Contains(t, res.Reply, "expired")
	assert.Contains(t, res.Reply, "No active submission")

	draft, err := store.Get(ctx, testSender)
	require.NoError(t, err)
	assert.Nil(t, draft)
}
