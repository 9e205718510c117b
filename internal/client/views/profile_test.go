package views

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_EditAndSave(t *testing.T) {
	fc := &fakeClient{updateProfile: func(uid int64, upd models.ProfileUpdate) (*models.User, error) {
		return &models.User{ID: uid, Username: "mina", Bio: upd.Bio, Address: upd.Address}, nil
	}}
	s := signedIn(models.User{ID: 7, Username: "mina", Bio: "old", Address: "Seoul"})
	v := NewProfile(fc, s)

	require.NoError(t, v.BeginEdit())
	assert.Equal(t, "old", v.Draft().Bio)

	draft := v.Draft()
	draft.Bio = "collector"
	require.NoError(t, v.Stage(draft))

	cur, _ := s.CurrentUser()
	assert.Equal(t, "old", cur.Bio, "staging must not touch the session")

	u, err := v.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "collector", u.Bio)
	assert.False(t, v.Editing())

	cur, _ = s.CurrentUser()
	assert.Equal(t, "collector", cur.Bio)
	assert.Equal(t, "Seoul", cur.Address)
}

func TestProfile_SaveFailureKeepsDraft(t *testing.T) {
	fc := &fakeClient{updateProfile: func(int64, models.ProfileUpdate) (*models.User, error) {
		return nil, &api.NetworkError{Op: "PUT /users/7", Err: errors.New("timeout")}
	}}
	s := signedIn(models.User{ID: 7, Bio: "old"})
	v := NewProfile(fc, s)

	require.NoError(t, v.BeginEdit())
	require.NoError(t, v.Stage(models.ProfileUpdate{Bio: "new"}))

	_, err := v.Save(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.True(t, v.Editing())
	assert.Equal(t, "new", v.Draft().Bio)
	assert.ErrorIs(t, v.Err(), api.ErrUnavailable)

	cur, _ := s.CurrentUser()
	assert.Equal(t, "old", cur.Bio)
}

func TestProfile_NotEditing(t *testing.T) {
	v := NewProfile(&fakeClient{}, signedIn(models.User{ID: 7}))

	require.ErrorIs(t, v.Stage(models.ProfileUpdate{}), ErrNotEditing)
	_, err := v.Save(context.Background())
	require.ErrorIs(t, err, ErrNotEditing)

	require.NoError(t, v.BeginEdit())
	v.Cancel()
	assert.False(t, v.Editing())
}

func TestProfile_SignOutDropsDraft(t *testing.T) {
	fc := &fakeClient{updateProfile: func(int64, models.ProfileUpdate) (*models.User, error) {
		return nil, &api.NetworkError{Op: "PUT /users/1", Err: errors.New("timeout")}
	}}
	s := signedIn(models.User{ID: 1, Bio: "alice"})
	v := NewProfile(fc, s)

	require.NoError(t, v.BeginEdit())
	require.NoError(t, v.Stage(models.ProfileUpdate{Bio: "alice private", Address: "alice home"}))
	_, err := v.Save(context.Background())
	require.Error(t, err)
	require.True(t, v.Editing())

	require.NoError(t, s.SignOut(context.Background()))
	v.OnSession(models.User{ID: 1}, false)
	assert.False(t, v.Editing())
	assert.Equal(t, models.ProfileUpdate{}, v.Draft())
	assert.NoError(t, v.Err())

	bob := models.User{ID: 2, Bio: "bob"}
	require.NoError(t, s.SignIn(context.Background(), bob))
	v.OnSession(bob, true)

	_, err = v.Save(context.Background())
	require.ErrorIs(t, err, ErrNotEditing)
	assert.Equal(t, 1, fc.count("UpdateProfile"))
}

func TestProfile_OnSessionKeepsOwnersDraft(t *testing.T) {
	s := signedIn(models.User{ID: 1})
	v := NewProfile(&fakeClient{}, s)

	require.NoError(t, v.BeginEdit())
	require.NoError(t, v.Stage(models.ProfileUpdate{Bio: "draft"}))

	v.OnSession(models.User{ID: 1}, true)
	assert.True(t, v.Editing())
	assert.Equal(t, "draft", v.Draft().Bio)

	v.OnSession(models.User{ID: 2}, true)
	assert.False(t, v.Editing())
}

func TestProfile_SaveRefusesDraftOfAnotherUser(t *testing.T) {
	fc := &fakeClient{}
	s := signedIn(models.User{ID: 1})
	v := NewProfile(fc, s)

	require.NoError(t, v.BeginEdit())
	require.NoError(t, v.Stage(models.ProfileUpdate{Bio: "alice private"}))

	require.NoError(t, s.SignIn(context.Background(), models.User{ID: 2}))
	_, err := v.Save(context.Background())
	require.ErrorIs(t, err, ErrDraftForeign)
	assert.False(t, v.Editing())
	assert.Zero(t, fc.count("UpdateProfile"))
}
