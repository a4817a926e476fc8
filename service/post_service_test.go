package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkup/dao"
	"linkup/model"
)

func newPostService(t *testing.T) (*PostService, *dao.UserDAO) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "linkup.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.PostLike{}, &model.Comment{}))
	userDAO := dao.NewUserDAO(db)
	return NewPostService(dao.NewPostDAO(db), userDAO), userDAO
}

func createUser(t *testing.T, userDAO *dao.UserDAO, name, email string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email, Password: "hash"}
	require.NoError(t, userDAO.Create(user))
	return user
}

func TestPostService_Create_SnapshotsAuthorName(t *testing.T) {
	svc, userDAO := newPostService(t)
	ann := createUser(t, userDAO, "Ann", "a@x.com")

	post, err := svc.Create(ann.ID, "  Hello world  ", "")
	require.NoError(t, err)
	assert.Equal(t, "Ann", post.UserName)
	assert.Equal(t, "Hello world", post.Content, "content is trimmed")
	assert.Empty(t, post.LikeUserIDs())
	assert.Empty(t, post.Comments)

	// Renaming the author afterwards leaves the snapshot alone.
	_, err = userDAO.UpdateProfile(ann.ID, map[string]interface{}{"name": "Anna"})
	require.NoError(t, err)
	feed, err := svc.Feed()
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Ann", feed[0].UserName)
}

func TestPostService_Create_UnknownAuthor(t *testing.T) {
	svc, _ := newPostService(t)
	_, err := svc.Create(999, "hello", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostService_Profile(t *testing.T) {
	svc, userDAO := newPostService(t)
	ann := createUser(t, userDAO, "Ann", "a@x.com")
	bob := createUser(t, userDAO, "Bob", "b@x.com")
	_, err := svc.Create(ann.ID, "ann's post", "")
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, "bob's post", "")
	require.NoError(t, err)

	user, posts, err := svc.Profile(ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	require.Len(t, posts, 1)
	assert.Equal(t, "ann's post", posts[0].Content)

	_, _, err = svc.Profile(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostService_CommentCarriesSnapshot(t *testing.T) {
	svc, userDAO := newPostService(t)
	ann := createUser(t, userDAO, "Ann", "a@x.com")
	bob := createUser(t, userDAO, "Bob", "b@x.com")
	post, err := svc.Create(ann.ID, "hello", "")
	require.NoError(t, err)

	got, err := svc.AddComment(post.ID, bob.ID, "  nice post  ")
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Bob", got.Comments[0].UserName)
	assert.Equal(t, "nice post", got.Comments[0].Text)

	_, err = svc.AddComment(post.ID, 999, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
