package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"templecms/internal/database"
)

func setupRepo(t *testing.T) Repository {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Event{}))
	return NewRepository(db)
}

func TestRepository_List_FilterAndOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	seed := []Event{
		{Name: "past-old", Description: "d", Category: CategoryCeremony, EventDate: now.Add(-48 * time.Hour), Photos: "[]"},
		{Name: "past-recent", Description: "d", Category: CategoryCeremony, EventDate: now.Add(-1 * time.Hour), Photos: "[]"},
		{Name: "at-now", Description: "d", Category: CategoryMeditation, EventDate: now, Photos: "[]"},
		{Name: "soon", Description: "d", Category: CategoryWorkshop, EventDate: now.Add(2 * time.Hour), Photos: "[]"},
		{Name: "later", Description: "d", Category: CategoryRetreat, EventDate: now.Add(72 * time.Hour), Photos: "[]"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	upcoming, err := repo.List(ctx, FilterUpcoming, now)
	require.NoError(t, err)
	names := eventNames(upcoming)
	// boundary inclusive: at-now is upcoming; ascending by date
	assert.Equal(t, []string{"at-now", "soon", "later"}, names)

	past, err := repo.List(ctx, FilterPast, now)
	require.NoError(t, err)
	// most recent past first
	assert.Equal(t, []string{"past-recent", "past-old"}, eventNames(past))

	all, err := repo.List(ctx, FilterAll, now)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRepository_List_InvalidFilter(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.List(context.Background(), ListFilter("tomorrow"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestRepository_UpdateAndDelete_NotFound(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	err := repo.Update(ctx, 12345, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrEventNotFound)

	err = repo.Delete(ctx, 12345)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRepository_RoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	e := &Event{
		Name:        "Test Event",
		Description: "Test Description",
		Category:    CategoryWorkshop,
		EventDate:   time.Date(2027, 1, 15, 9, 0, 0, 0, time.UTC),
		Photos:      "[]",
	}
	require.NoError(t, repo.Create(ctx, e))
	require.NotZero(t, e.ID)

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Event", got.Name)
	assert.Equal(t, "Test Description", got.Description)
	assert.Equal(t, CategoryWorkshop, got.Category)
	assert.True(t, got.EventDate.Equal(e.EventDate))
}

func eventNames(events []Event) []string {
	names := make([]string, len(events))
	for i := range events {
		names[i] = events[i].Name
	}
	return names
}
