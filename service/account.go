package service

import (
	"context"
	"errors"
	"time"

	"github.com/ariebrainware/dentist-api/auth"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"gorm.io/gorm"
)

const (
	msgInvalidCredentials = "Invalid name, phonenumber or password"
	msgAlreadySignedUp    = "Account already exists, please login"
	msgIdentityMismatch   = "You can only change your own phone number"
	msgPasswordRequired   = "password is required"
)

// AccountService handles signup, login, logout and phone number changes.
type AccountService struct {
	db       *gorm.DB
	codec    *auth.Codec
	sessions *util.SessionStore
	clock    Clock
}

// NewAccountService returns an AccountService. sessions may wrap a nil Redis client.
func NewAccountService(db *gorm.DB, codec *auth.Codec, sessions *util.SessionStore, clock Clock) *AccountService {
	return &AccountService{db: db, codec: codec, sessions: sessions, clock: clock}
}

// Credentials identify an account and prove ownership.
type Credentials struct {
	Name        string
	PhoneNumber string
	Password    string
}

func (c *Credentials) validate() error {
	if v := util.ValidatePhoneNumber(c.PhoneNumber); !v.Valid {
		return badRequest(v.Error)
	}
	c.Name = util.CapitalizeName(c.Name)
	if v := util.ValidateRequired("name", c.Name); !v.Valid {
		return badRequest(v.Error)
	}
	if c.Password == "" {
		return badRequest(msgPasswordRequired)
	}
	return nil
}

// Session is an issued token and the account it belongs to.
type Session struct {
	Token string
	User  *model.User
}

// Signup sets the password of a staff-registered patient, or creates a new
// patient when none exists. An account that already has a password is a conflict.
// claimed reports whether an existing account was taken over.
func (s *AccountService) Signup(ctx context.Context, cred Credentials) (sess *Session, claimed bool, err error) {
	if err := cred.validate(); err != nil {
		return nil, false, err
	}
	hashed, err := util.HashPassword(cred.Password)
	if err != nil {
		return nil, false, internal("failed to hash password", err)
	}

	var user model.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("phone_number = ? AND name = ?", cred.PhoneNumber, cred.Name).First(&user).Error
		switch {
		case err == nil:
			if user.HasPassword() {
				return conflict(msgAlreadySignedUp, nil)
			}
			claimed = true
			user.Password = hashed
			return tx.Model(&user).Update("password", hashed).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = model.User{
				PhoneNumber: cred.PhoneNumber,
				Name:        cred.Name,
				Role:        model.RolePatient,
				Password:    hashed,
			}
			return tx.Create(&user).Error
		default:
			return err
		}
	})
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return nil, false, se
		}
		return nil, false, storeError(err, msgAlreadySignedUp, msgUserNotFound)
	}

	sess, err = s.issue(ctx, &user)
	if err != nil {
		return nil, false, err
	}
	return sess, claimed, nil
}

// Login verifies the password and issues a token.
func (s *AccountService) Login(ctx context.Context, cred Credentials) (*Session, error) {
	if err := cred.validate(); err != nil {
		return nil, err
	}

	var user model.User
	err := s.db.WithContext(ctx).
		Where("phone_number = ? AND name = ?", cred.PhoneNumber, cred.Name).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return nil, internal("failed to load account", err)
	}
	if err := util.VerifyPassword(user.Password, cred.Password); err != nil {
		return nil, unauthorized(msgInvalidCredentials)
	}
	return s.issue(ctx, &user)
}

// issue signs a token for user and tracks it for revocation.
func (s *AccountService) issue(ctx context.Context, user *model.User) (*Session, error) {
	token, err := s.codec.Encode(auth.Claims{
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	})
	if err != nil {
		return nil, internal("could not generate token", err)
	}
	if claims, err := s.codec.Decode(token); err == nil {
		if err := s.sessions.TrackSession(ctx, user.PhoneNumber, user.Name, claims.ID, s.codec.TTL()); err != nil {
			return nil, internal("failed to record session", err)
		}
	}
	return &Session{Token: token, User: user}, nil
}

// Logout revokes the presented token until it would have expired.
func (s *AccountService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.Expiry().Sub(s.clock.Instant())
	if err := s.sessions.RevokeToken(ctx, claims.ID, ttl); err != nil {
		return internal("failed to revoke token", err)
	}
	if err := s.sessions.RemoveSession(ctx, claims.PhoneNumber, claims.Name, claims.ID); err != nil {
		return internal("failed to remove session", err)
	}
	return nil
}

// PhoneResetInput changes the phone number of the caller's own account.
type PhoneResetInput struct {
	Name           string
	OldPhoneNumber string
	NewPhoneNumber string
}

// ChangePhoneNumber moves the caller's account to a new phone number. The
// identity in the input must match the token. Tokens issued for the old
// identity are revoked.
func (s *AccountService) ChangePhoneNumber(ctx context.Context, claims *auth.Claims, in PhoneResetInput) (*Session, error) {
	in.Name = util.CapitalizeName(in.Name)
	if v := util.ValidatePhoneNumber(in.OldPhoneNumber); !v.Valid {
		return nil, badRequest(v.Error)
	}
	if v := util.ValidatePhoneNumber(in.NewPhoneNumber); !v.Valid {
		return nil, badRequest(v.Error)
	}
	if in.Name != claims.Name || in.OldPhoneNumber != claims.PhoneNumber {
		return nil, forbidden(msgIdentityMismatch)
	}
	if in.OldPhoneNumber == in.NewPhoneNumber {
		return nil, badRequest("new phonenumber must differ from the old one")
	}

	user, err := findUser(ctx, s.db, in.OldPhoneNumber, in.Name)
	if err != nil {
		return nil, err
	}
	res := s.db.WithContext(ctx).Model(user).Update("phone_number", in.NewPhoneNumber)
	if res.Error != nil {
		return nil, storeError(res.Error, msgAccountExists, msgUserNotFound)
	}
	user.PhoneNumber = in.NewPhoneNumber

	if err := s.sessions.RevokeUserSessions(ctx, in.OldPhoneNumber, in.Name, s.codec.TTL()); err != nil {
		return nil, internal("failed to revoke old sessions", err)
	}
	return s.issue(ctx, user)
}

// EnsureStaff creates a staff account or resets its password. The role of an
// existing account is never changed.
func (s *AccountService) EnsureStaff(ctx context.Context, cred Credentials, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, badRequest("unknown role")
	}
	if err := cred.validate(); err != nil {
		return nil, err
	}
	hashed, err := util.HashPassword(cred.Password)
	if err != nil {
		return nil, internal("failed to hash password", err)
	}

	var user model.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("phone_number = ? AND name = ?", cred.PhoneNumber, cred.Name).First(&user).Error
		switch {
		case err == nil:
			if user.Role != role {
				return conflict("Account exists with a different role", nil)
			}
			user.Password = hashed
			return tx.Model(&user).Update("password", hashed).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = model.User{PhoneNumber: cred.PhoneNumber, Name: cred.Name, Role: role, Password: hashed}
			return tx.Create(&user).Error
		default:
			return err
		}
	})
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, storeError(err, msgAccountExists, msgUserNotFound)
	}
	return &user, nil
}

// TokenTTL is the lifetime of issued tokens.
func (s *AccountService) TokenTTL() time.Duration {
	return s.codec.TTL()
}
