package services

import (
	"testing"

	"yatube/internal/models"
	"yatube/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestFollowAuthorIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	follower := testutil.CreateUser(t, db, "leo")
	author := testutil.CreateUser(t, db, "anna")

	require.NoError(t, FollowAuthor(db, follower.ID, author.ID))
	require.NoError(t, FollowAuthor(db, follower.ID, author.ID))

	var count int64
	db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", follower.ID, author.ID).
		Count(&count)
	require.EqualValues(t, 1, count, "a repeated follow must not add a second edge")
}

func TestFollowAuthorSelfFollowRefused(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "leo")

	require.NoError(t, FollowAuthor(db, user.ID, user.ID))

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	require.EqualValues(t, 0, count, "self-follow must not create an edge")
}

func TestUnfollowAuthor(t *testing.T) {
	db := testutil.NewTestDB(t)
	follower := testutil.CreateUser(t, db, "leo")
	author := testutil.CreateUser(t, db, "anna")

	require.NoError(t, FollowAuthor(db, follower.ID, author.ID))
	require.NoError(t, UnfollowAuthor(db, follower.ID, author.ID))

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	require.EqualValues(t, 0, count)

	// Absent edge is a no-op, not an error
	require.NoError(t, UnfollowAuthor(db, follower.ID, author.ID))
}

func TestIsFollowing(t *testing.T) {
	db := testutil.NewTestDB(t)
	follower := testutil.CreateUser(t, db, "leo")
	author := testutil.CreateUser(t, db, "anna")

	require.False(t, IsFollowing(db, follower.ID, author.ID))
	require.False(t, IsFollowing(db, 0, author.ID), "anonymous viewers are never following")

	require.NoError(t, FollowAuthor(db, follower.ID, author.ID))
	require.True(t, IsFollowing(db, follower.ID, author.ID))
	require.False(t, IsFollowing(db, author.ID, follower.ID), "the edge is directed")
}
