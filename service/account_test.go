package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ariebrainware/dentist-api/auth"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type accountFixture struct {
	db    *gorm.DB
	mr    *miniredis.Miniredis
	codec *auth.Codec
	store *util.SessionStore
	svc   *AccountService
}

func setupAccounts(t *testing.T) *accountFixture {
	t.Helper()
	db := setupTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	codec := auth.NewCodec("test-secret", time.Hour, "test")
	store := util.NewSessionStore(rdb)
	return &accountFixture{
		db:    db,
		mr:    mr,
		codec: codec,
		store: store,
		svc:   NewAccountService(db, codec, store, NewClock(clinicZone)),
	}
}

func creds(phone, name, password string) Credentials {
	return Credentials{PhoneNumber: phone, Name: name, Password: password}
}

func TestSignup_NewPatient(t *testing.T) {
	f := setupAccounts(t)

	sess, claimed, err := f.svc.Signup(context.Background(), creds("9999999999", "jane doe", "secret123"))
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Equal(t, "Jane Doe", sess.User.Name)
	assert.Equal(t, model.RolePatient, sess.User.Role)

	claims, err := f.codec.Decode(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "9999999999", claims.PhoneNumber)
	assert.Equal(t, model.RolePatient, claims.Role)

	members, err := f.mr.Members("user_sessions:9999999999:Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, []string{claims.ID}, members)
}

func TestSignup_ClaimsStaffRegisteredPatient(t *testing.T) {
	f := setupAccounts(t)
	registerPatient(t, f.db, "9999999999", "Jane Doe", "1990-01-01")

	sess, claimed, err := f.svc.Signup(context.Background(), creds("9999999999", "Jane Doe", "secret123"))
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.True(t, sess.User.HasPassword())

	var count int64
	require.NoError(t, f.db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, _, err = f.svc.Signup(context.Background(), creds("9999999999", "Jane Doe", "other"))
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestSignup_Validation(t *testing.T) {
	f := setupAccounts(t)
	ctx := context.Background()

	_, _, err := f.svc.Signup(ctx, creds("123", "Jane", "secret"))
	assert.Equal(t, KindBadRequest, KindOf(err))
	_, _, err = f.svc.Signup(ctx, creds("9999999999", " ", "secret"))
	assert.Equal(t, KindBadRequest, KindOf(err))
	_, _, err = f.svc.Signup(ctx, creds("9999999999", "Jane", ""))
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestLogin(t *testing.T) {
	f := setupAccounts(t)
	ctx := context.Background()
	_, _, err := f.svc.Signup(ctx, creds("9999999999", "Jane Doe", "secret123"))
	require.NoError(t, err)

	sess, err := f.svc.Login(ctx, creds("9999999999", "jane  doe", "secret123"))
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)

	_, err = f.svc.Login(ctx, creds("9999999999", "Jane Doe", "wrong"))
	assert.Equal(t, KindUnauthorized, KindOf(err))

	_, err = f.svc.Login(ctx, creds("8888888888", "Jane Doe", "secret123"))
	assert.Equal(t, KindUnauthorized, KindOf(err))
}

func TestLogin_PasswordlessAccountCannotLogin(t *testing.T) {
	f := setupAccounts(t)
	registerPatient(t, f.db, "9999999999", "Jane Doe", "1990-01-01")

	_, err := f.svc.Login(context.Background(), creds("9999999999", "Jane Doe", "anything"))
	assert.Equal(t, KindUnauthorized, KindOf(err))
}

func TestLogout_RevokesToken(t *testing.T) {
	f := setupAccounts(t)
	ctx := context.Background()
	sess, _, err := f.svc.Signup(ctx, creds("9999999999", "Jane Doe", "secret123"))
	require.NoError(t, err)
	claims, err := f.codec.Decode(sess.Token)
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, claims))

	revoked, err := f.store.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.False(t, f.mr.Exists("user_sessions:9999999999:Jane Doe"))

	f.mr.FastForward(2 * time.Hour)
	revoked, err = f.store.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestChangePhoneNumber(t *testing.T) {
	f := setupAccounts(t)
	ctx := context.Background()
	first, _, err := f.svc.Signup(ctx, creds("9999999999", "Jane Doe", "secret123"))
	require.NoError(t, err)
	claims, err := f.codec.Decode(first.Token)
	require.NoError(t, err)

	sess, err := f.svc.ChangePhoneNumber(ctx, claims, PhoneResetInput{Name: "Jane Doe", OldPhoneNumber: "9999999999", NewPhoneNumber: "8888888888"})
	require.NoError(t, err)
	assert.Equal(t, "8888888888", sess.User.PhoneNumber)

	newClaims, err := f.codec.Decode(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "8888888888", newClaims.PhoneNumber)

	revoked, err := f.store.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = f.svc.Login(ctx, creds("8888888888", "Jane Doe", "secret123"))
	assert.NoError(t, err)
	_, err = f.svc.Login(ctx, creds("9999999999", "Jane Doe", "secret123"))
	assert.Equal(t, KindUnauthorized, KindOf(err))
}

func TestChangePhoneNumber_Rejections(t *testing.T) {
	f := setupAccounts(t)
	ctx := context.Background()
	sess, _, err := f.svc.Signup(ctx, creds("9999999999", "Jane Doe", "secret123"))
	require.NoError(t, err)
	_, _, err = f.svc.Signup(ctx, creds("7777777777", "Jane Doe", "secret123"))
	require.NoError(t, err)
	claims, err := f.codec.Decode(sess.Token)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   PhoneResetInput
		kind Kind
	}{
		{"someone else", PhoneResetInput{Name: "John Roe", OldPhoneNumber: "9999999999", NewPhoneNumber: "8888888888"}, KindForbidden},
		{"not my number", PhoneResetInput{Name: "Jane Doe", OldPhoneNumber: "6666666666", NewPhoneNumber: "8888888888"}, KindForbidden},
		{"same number", PhoneResetInput{Name: "Jane Doe", OldPhoneNumber: "9999999999", NewPhoneNumber: "9999999999"}, KindBadRequest},
		{"bad number", PhoneResetInput{Name: "Jane Doe", OldPhoneNumber: "9999999999", NewPhoneNumber: "12"}, KindBadRequest},
		{"taken", PhoneResetInput{Name: "Jane Doe", OldPhoneNumber: "9999999999", NewPhoneNumber: "7777777777"}, KindConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ChangePhoneNumber(ctx, claims, tt.in)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestEnsureStaff(t *testing.T) {
	f := setupAccounts(t)
	ctx := context.Background()

	u, err := f.svc.EnsureStaff(ctx, creds("9000000001", "Dr Mehta", "first"), model.RoleDentist)
	require.NoError(t, err)
	assert.Equal(t, model.RoleDentist, u.Role)

	_, err = f.svc.EnsureStaff(ctx, creds("9000000001", "Dr Mehta", "second"), model.RoleDentist)
	require.NoError(t, err)
	_, err = f.svc.Login(ctx, creds("9000000001", "Dr Mehta", "second"))
	assert.NoError(t, err)

	_, err = f.svc.EnsureStaff(ctx, creds("9000000001", "Dr Mehta", "third"), model.RoleAdmin)
	assert.Equal(t, KindConflict, KindOf(err))

	_, err = f.svc.EnsureStaff(ctx, creds("9000000002", "Someone", "x"), model.Role("janitor"))
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestAccountService_WithoutRedis(t *testing.T) {
	db := setupTestDB(t)
	codec := auth.NewCodec("test-secret", time.Hour, "test")
	svc := NewAccountService(db, codec, util.NewSessionStore(nil), NewClock(clinicZone))

	sess, _, err := svc.Signup(context.Background(), creds("9999999999", "Jane Doe", "secret123"))
	require.NoError(t, err)
	claims, err := codec.Decode(sess.Token)
	require.NoError(t, err)
	assert.NoError(t, svc.Logout(context.Background(), claims))
	assert.Equal(t, time.Hour, svc.TokenTTL())
}
