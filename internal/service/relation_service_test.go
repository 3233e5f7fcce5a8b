package service

import (
	"testing"

	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRelations(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelationService(repository.NewFollowRepository(db))
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")
	eve := seedUser(t, db, "eve")

	require.NoError(t, db.Create(&model.Follow{UserID: ana.ID, FollowedID: bob.ID}).Error)
	require.NoError(t, db.Create(&model.Follow{UserID: ana.ID, FollowedID: eve.ID}).Error)
	require.NoError(t, db.Create(&model.Follow{UserID: eve.ID, FollowedID: ana.ID}).Error)

	relations, err := svc.ResolveRelations(testCtx(), ana.ID)
	require.NoError(t, err)

	assert.ElementsMatch(t, relations.Following, []uuid.UUID{bob.ID, eve.ID})
	assert.ElementsMatch(t, relations.FollowedBy, []uuid.UUID{eve.ID})
}

func TestVisibilityScopeIncludesSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelationService(repository.NewFollowRepository(db))
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")

	require.NoError(t, db.Create(&model.Follow{UserID: ana.ID, FollowedID: bob.ID}).Error)

	scope, err := svc.VisibilityScope(testCtx(), ana.ID)
	require.NoError(t, err)

	assert.ElementsMatch(t, scope, []uuid.UUID{ana.ID, bob.ID})
}

func TestVisibilityScopeWithNoFollows(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelationService(repository.NewFollowRepository(db))
	ana := seedUser(t, db, "ana")

	scope, err := svc.VisibilityScope(testCtx(), ana.ID)
	require.NoError(t, err)

	assert.ElementsMatch(t, scope, []uuid.UUID{ana.ID})
}
