package service

import (
	"fmt"
	"testing"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without a Meilisearch client the service answers from the database.
func TestSearchFallsBackToSQL(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserSearchService(nil, repository.NewUserRepository(db))

	seedUser(t, db, "anabel")
	seedUser(t, db, "anastasia")
	seedUser(t, db, "bob")

	result, err := svc.Search(testCtx(), "ana", 1)
	require.NoError(t, err)

	assert.EqualValues(t, 2, result.Total)
	assert.Equal(t, 1, result.Pages)
	require.Len(t, result.Users, 2)
	for _, user := range result.Users {
		assert.Contains(t, user.Nickname, "ana")
		assert.NotEqual(t, "", user.ID.String())
	}
}

func TestSearchFallbackPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserSearchService(nil, repository.NewUserRepository(db))

	for i := 0; i < 5; i++ {
		seedUser(t, db, fmt.Sprintf("ana%d", i))
	}

	page1, err := svc.Search(testCtx(), "ana", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 5, page1.Total)
	assert.Equal(t, 2, page1.Pages)
	assert.Len(t, page1.Users, dto.ItemsPerPage)

	page2, err := svc.Search(testCtx(), "ana", 2)
	require.NoError(t, err)
	assert.Len(t, page2.Users, 1)
}

func TestIndexUserWithoutClientIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserSearchService(nil, repository.NewUserRepository(db))
	ana := seedUser(t, db, "ana")

	assert.NoError(t, svc.IndexUser(testCtx(), ana))
}
