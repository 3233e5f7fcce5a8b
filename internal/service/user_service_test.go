package service

import (
	"fmt"
	"testing"
	"time"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/repository"
	"anoa.com/redsocial/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewFollowRepository(db),
		repository.NewPublicationRepository(db),
	)
}

func TestGetUserWithRelations(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")

	// ana follows bob, bob does not follow back.
	require.NoError(t, db.Create(&model.Follow{UserID: ana.ID, FollowedID: bob.ID}).Error)

	profile, err := svc.GetWithRelations(testCtx(), ana.ID, bob.ID)
	require.NoError(t, err)

	assert.Equal(t, bob.ID, profile.User.ID)
	assert.Empty(t, profile.User.Password)
	assert.True(t, profile.Following)
	assert.False(t, profile.Followed)

	// From bob's side the flags flip.
	profile, err = svc.GetWithRelations(testCtx(), bob.ID, ana.ID)
	require.NoError(t, err)
	assert.False(t, profile.Following)
	assert.True(t, profile.Followed)
}

func TestGetUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ana := seedUser(t, db, "ana")

	_, err := svc.GetWithRelations(testCtx(), ana.ID, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListUsersPaginated(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	for i := 0; i < 6; i++ {
		seedUser(t, db, fmt.Sprintf("user%d", i))
	}

	page1, err := svc.List(testCtx(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 6, page1.Total)
	assert.Equal(t, 2, page1.Pages)
	assert.Len(t, page1.Users, dto.ItemsPerPage)
	for _, user := range page1.Users {
		assert.Empty(t, user.Password)
	}

	page2, err := svc.List(testCtx(), 2)
	require.NoError(t, err)
	assert.Len(t, page2.Users, 2)
}

func TestCounters(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")
	eve := seedUser(t, db, "eve")

	require.NoError(t, db.Create(&model.Follow{UserID: ana.ID, FollowedID: bob.ID}).Error)
	require.NoError(t, db.Create(&model.Follow{UserID: ana.ID, FollowedID: eve.ID}).Error)
	require.NoError(t, db.Create(&model.Follow{UserID: bob.ID, FollowedID: ana.ID}).Error)
	seedPublication(t, db, ana.ID, "hello", time.Now().Unix())

	counters, err := svc.Counters(testCtx(), ana.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 2, counters.Following)
	assert.EqualValues(t, 1, counters.Followed)
	assert.EqualValues(t, 1, counters.Publications)
}
