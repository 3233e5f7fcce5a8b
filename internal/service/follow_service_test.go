package service

import (
	"testing"

	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/repository"
	"anoa.com/redsocial/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFollowService(db *gorm.DB, decoration string) FollowService {
	follows := repository.NewFollowRepository(db)
	users := repository.NewUserRepository(db)
	relations := NewRelationService(follows)
	return NewFollowService(follows, users, relations, decoration)
}

func follow(t *testing.T, svc FollowService, from, to uuid.UUID) {
	t.Helper()
	_, err := svc.Create(testCtx(), from, to)
	require.NoError(t, err)
}

func TestFollowSelfRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db, "caller")
	ana := seedUser(t, db, "ana")

	_, err := svc.Create(testCtx(), ana.ID, ana.ID)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestFollowUnknownTarget(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db, "caller")
	ana := seedUser(t, db, "ana")

	_, err := svc.Create(testCtx(), ana.ID, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestFollowDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db, "caller")
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")

	follow(t, svc, ana.ID, bob.ID)

	_, err := svc.Create(testCtx(), ana.ID, bob.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	var count int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUnfollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db, "caller")
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")

	follow(t, svc, ana.ID, bob.ID)

	require.NoError(t, svc.Delete(testCtx(), ana.ID, bob.ID))
	// Deleting again is still an ack.
	require.NoError(t, svc.Delete(testCtx(), ana.ID, bob.ID))

	var count int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestListFollowingDecoratedWithCallerRelations(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db, "caller")
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")
	eve := seedUser(t, db, "eve")

	// bob follows eve; ana follows bob and is followed by eve.
	follow(t, svc, bob.ID, eve.ID)
	follow(t, svc, ana.ID, bob.ID)
	follow(t, svc, eve.ID, ana.ID)

	// ana lists who bob follows.
	page, err := svc.ListFollowing(testCtx(), ana.ID, bob.ID, 1)
	require.NoError(t, err)

	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Follows, 1)
	assert.Equal(t, eve.ID, page.Follows[0].FollowedID)
	require.NotNil(t, page.Follows[0].Followed)
	assert.Equal(t, "eve", page.Follows[0].Followed.Nickname)

	// Decoration reflects ana, the caller, not bob.
	assert.Equal(t, []uuid.UUID{bob.ID}, page.UsersFollowing)
	assert.Equal(t, []uuid.UUID{eve.ID}, page.UsersFollowMe)
}

func TestListFollowingDecoratedWithSubjectRelations(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db, "subject")
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")
	eve := seedUser(t, db, "eve")

	follow(t, svc, bob.ID, eve.ID)
	follow(t, svc, ana.ID, bob.ID)

	page, err := svc.ListFollowing(testCtx(), ana.ID, bob.ID, 1)
	require.NoError(t, err)

	// Decoration reflects bob, the listed subject.
	assert.Equal(t, []uuid.UUID{eve.ID}, page.UsersFollowing)
	assert.Equal(t, []uuid.UUID{ana.ID}, page.UsersFollowMe)
}

func TestListFollowersPopulatesFollower(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db, "caller")
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")

	follow(t, svc, bob.ID, ana.ID)

	page, err := svc.ListFollowers(testCtx(), ana.ID, ana.ID, 1)
	require.NoError(t, err)

	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Follows, 1)
	require.NotNil(t, page.Follows[0].User)
	assert.Equal(t, "bob", page.Follows[0].User.Nickname)
}

func TestMyFollowsBothSides(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db, "caller")
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")
	eve := seedUser(t, db, "eve")

	follow(t, svc, ana.ID, bob.ID)
	follow(t, svc, eve.ID, ana.ID)

	following, err := svc.MyFollows(testCtx(), ana.ID, false)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].FollowedID)

	followers, err := svc.MyFollows(testCtx(), ana.ID, true)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, eve.ID, followers[0].UserID)
}
