package datastore

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *models.Dataset {
	return &models.Dataset{
		Entries: map[string]*models.Entry{
			"E1": {Key: "E1", Persons: []*models.PersonRecord{{ID: 1}}},
		},
		Persons:  map[int]*models.PersonRecord{1: {ID: 1}},
		Families: map[int]*models.FamilyRecord{},
	}
}

func TestStorePutGet(t *testing.T) {
	store := NewStore()

	held := store.Put("census-1850", "text", testDataset())
	require.NotEmpty(t, held.ID)
	assert.Equal(t, "census-1850", held.Name)
	assert.Equal(t, "text", held.Format)
	assert.Equal(t, 1, held.PersonCount)
	assert.Equal(t, 1, held.EntryCount)
	assert.False(t, held.UploadedAt.IsZero())

	got, ok := store.Get(held.ID)
	require.True(t, ok)
	assert.Same(t, held, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	held := store.Put("d", "text", testDataset())

	assert.True(t, store.Delete(held.ID))
	assert.False(t, store.Delete(held.ID))

	_, ok := store.Get(held.ID)
	assert.False(t, ok)
}

func TestStoreList(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.List())

	first := store.Put("a", "text", testDataset())
	second := store.Put("b", "xml", testDataset())

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, 2, store.Len())

	ids := []string{list[0].ID, list[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.False(t, list[1].UploadedAt.Before(list[0].UploadedAt))
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			held := store.Put(fmt.Sprintf("d%d", i), "text", testDataset())
			store.Get(held.ID)
			store.List()
			if i%2 == 0 {
				store.Delete(held.ID)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, store.Len())
}
