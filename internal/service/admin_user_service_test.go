package service

import (
	"context"
	"testing"
	"time"

	"github.com/rkenterprise/site-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// fakeAdminUserStore is an in-memory AdminUserStore.
type fakeAdminUserStore struct {
	users  map[int]*model.AdminUser
	nextID int
}

func newFakeAdminUserStore() *fakeAdminUserStore {
	return &fakeAdminUserStore{users: make(map[int]*model.AdminUser), nextID: 1}
}

func (f *fakeAdminUserStore) List(_ context.Context) ([]model.AdminUser, error) {
	var out []model.AdminUser
	for id := 1; id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeAdminUserStore) GetByID(_ context.Context, id int) (*model.AdminUser, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeAdminUserStore) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminUserStore) UsernameExists(_ context.Context, username string, excludeID int) (bool, error) {
	for _, u := range f.users {
		if u.Username == username && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdminUserStore) Create(_ context.Context, u *model.AdminUser) error {
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeAdminUserStore) Update(_ context.Context, id int, username, newHash string) (bool, error) {
	u, ok := f.users[id]
	if !ok {
		return false, nil
	}
	u.Username = username
	if newHash != "" {
		u.PasswordHash = newHash
	}
	return true, nil
}

func (f *fakeAdminUserStore) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func newAdminUserFixture() (*AdminUserService, *fakeAdminUserStore) {
	store := newFakeAdminUserStore()
	return NewAdminUserService(store, testAuthService(time.Hour)), store
}

func TestAdminUserCreateHashesPassword(t *testing.T) {
	svc, store := newAdminUserFixture()

	u, err := svc.Create(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Error("created user has no id")
	}

	stored := store.users[u.ID]
	if stored.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestAdminUserCreateRejectsDuplicate(t *testing.T) {
	svc, _ := newAdminUserFixture()

	if _, err := svc.Create(context.Background(), "alice", "secret123"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "alice", "other456"); err != ErrUsernameTaken {
		t.Errorf("duplicate Create: got %v, want ErrUsernameTaken", err)
	}
}

func TestAdminUserUpdate(t *testing.T) {
	svc, store := newAdminUserFixture()
	ctx := context.Background()

	u, _ := svc.Create(ctx, "alice", "secret123")
	oldHash := store.users[u.ID].PasswordHash

	// Rename without touching the password.
	if err := svc.Update(ctx, u.ID, "alice2", ""); err != nil {
		t.Fatalf("Update rename: %v", err)
	}
	if store.users[u.ID].Username != "alice2" {
		t.Errorf("username = %q, want alice2", store.users[u.ID].Username)
	}
	if store.users[u.ID].PasswordHash != oldHash {
		t.Error("empty password changed the stored hash")
	}

	// Same name for the same account is not a conflict.
	if err := svc.Update(ctx, u.ID, "alice2", "newpass1"); err != nil {
		t.Fatalf("Update with password: %v", err)
	}
	if store.users[u.ID].PasswordHash == oldHash {
		t.Error("new password did not change the stored hash")
	}
}

func TestAdminUserUpdateConflictsAndMisses(t *testing.T) {
	svc, _ := newAdminUserFixture()
	ctx := context.Background()

	a, _ := svc.Create(ctx, "alice", "secret123")
	svc.Create(ctx, "bob", "secret123")

	if err := svc.Update(ctx, a.ID, "bob", ""); err != ErrUsernameTaken {
		t.Errorf("rename onto existing user: got %v, want ErrUsernameTaken", err)
	}
	if err := svc.Update(ctx, 999, "carol", ""); err != ErrNotFound {
		t.Errorf("update missing id: got %v, want ErrNotFound", err)
	}
}

func TestAdminUserDelete(t *testing.T) {
	svc, _ := newAdminUserFixture()
	ctx := context.Background()

	u, _ := svc.Create(ctx, "alice", "secret123")
	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, u.ID); err != ErrNotFound {
		t.Errorf("second Delete: got %v, want ErrNotFound", err)
	}
	if _, err := svc.GetByID(ctx, u.ID); err != ErrNotFound {
		t.Errorf("GetByID after delete: got %v, want ErrNotFound", err)
	}
}

func TestAdminUserLookups(t *testing.T) {
	svc, _ := newAdminUserFixture()
	ctx := context.Background()

	if _, err := svc.GetByUsername(ctx, "ghost"); err != ErrNotFound {
		t.Errorf("GetByUsername missing: got %v, want ErrNotFound", err)
	}

	u, _ := svc.Create(ctx, "alice", "secret123")
	got, err := svc.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("GetByUsername id = %d, want %d", got.ID, u.ID)
	}
}
