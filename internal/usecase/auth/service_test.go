package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]user.User
	createErr error
	getErr    error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uuid.UUID]user.User{}}
}

func (m *memUsers) CreateUser(_ context.Context, u user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return user.User{}, m.getErr
	}
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *memUsers) UpdateProfile(context.Context, user.User) error { return nil }

func newTestService(users user.Repository) *Service {
	return NewService(users, WithBcryptCost(bcrypt.MinCost))
}

func TestRegister_DefaultsAndHash(t *testing.T) {
	users := newMemUsers()
	svc := newTestService(users)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Ana@Example.COM ",
		Password: "hunter22",
		FullName: " Ana ",
		Skills:   []string{"React", " react ", "", "SQL"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, "Ana", u.FullName)
	assert.Empty(t, u.PasswordHash)
	assert.Equal(t, career.EducationBachelor, u.EducationLevel)
	assert.Equal(t, career.ExperienceFresher, u.ExperienceLevel)
	assert.Equal(t, career.TrackWebDevelopment, u.PreferredTrack)
	assert.Equal(t, []string{"React", "SQL"}, u.Skills)
	assert.NotNil(t, u.TargetRoles)

	stored := users.byID[u.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
}

func TestRegister_FullNameCountsRunes(t *testing.T) {
	svc := newTestService(newMemUsers())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "hunter22", FullName: "é"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "hunter22", FullName: "Zoë"})
	assert.NoError(t, err)
}

func TestRegister_UniqueViolationMapsToConflict(t *testing.T) {
	users := newMemUsers()
	users.createErr = user.ErrEmailTaken
	svc := newTestService(users)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "hunter22", FullName: "Ana"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegister_StoreFailureKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	users := newMemUsers()
	users.createErr = cause
	svc := newTestService(users)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "hunter22", FullName: "Ana"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, cause)
}

func TestLogin(t *testing.T) {
	users := newMemUsers()
	svc := newTestService(users)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "hunter22", FullName: "Ana"})
	require.NoError(t, err)

	u, err := svc.Login(ctx, LoginInput{Email: "ANA@example.com ", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)
	assert.Empty(t, u.PasswordHash)

	for _, in := range []LoginInput{
		{Email: "ana@example.com", Password: "wrong-pass"},
		{Email: "nobody@example.com", Password: "hunter22"},
		{Email: "", Password: "hunter22"},
		{Email: "ana@example.com", Password: ""},
	} {
		_, err := svc.Login(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%+v", in)
	}

	users.getErr = errors.New("timeout")
	_, err = svc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestNewUser_RejectsUnknownEnums(t *testing.T) {
	base := RegisterInput{Email: "a@b.co", Password: "hunter22", FullName: "Ana"}

	for _, mutate := range []func(*RegisterInput){
		func(in *RegisterInput) { in.EducationLevel = "Kindergarten" },
		func(in *RegisterInput) { in.ExperienceLevel = "Principal" },
		func(in *RegisterInput) { in.PreferredTrack = "Astronomy" },
		func(in *RegisterInput) { in.Password = strings.Repeat(" ", 10) },
	} {
		in := base
		mutate(&in)
		_, err := newUser(in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
