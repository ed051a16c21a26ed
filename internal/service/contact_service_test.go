package service

import (
	"context"
	"testing"
	"time"

	"github.com/rkenterprise/site-backend/internal/model"
)

// fakeContactStore is an in-memory ContactQueryStore.
type fakeContactStore struct {
	queries map[int]*model.ContactQuery
	nextID  int
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{queries: make(map[int]*model.ContactQuery), nextID: 1}
}

func (f *fakeContactStore) Create(_ context.Context, q *model.ContactQuery) error {
	q.ID = f.nextID
	q.CreatedAt = time.Now()
	f.nextID++
	cp := *q
	f.queries[q.ID] = &cp
	return nil
}

func (f *fakeContactStore) List(_ context.Context) ([]model.ContactQuery, error) {
	var out []model.ContactQuery
	for id := f.nextID - 1; id >= 1; id-- {
		if q, ok := f.queries[id]; ok {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeContactStore) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := f.queries[id]; !ok {
		return false, nil
	}
	delete(f.queries, id)
	return true, nil
}

func TestContactSubmitAndList(t *testing.T) {
	svc := NewContactService(newFakeContactStore())
	ctx := context.Background()

	q := &model.ContactQuery{Name: "Jo", Email: "jo@example.com", Message: "Hi"}
	if err := svc.Submit(ctx, q); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if q.ID == 0 {
		t.Error("submitted query has no id")
	}

	queries, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(queries) != 1 || queries[0].Email != "jo@example.com" {
		t.Errorf("List = %+v, want the submitted query", queries)
	}
}

func TestContactDelete(t *testing.T) {
	svc := NewContactService(newFakeContactStore())
	ctx := context.Background()

	q := &model.ContactQuery{Name: "Jo", Email: "jo@example.com", Message: "Hi"}
	svc.Submit(ctx, q)

	if err := svc.Delete(ctx, q.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, q.ID); err != ErrNotFound {
		t.Errorf("second Delete: got %v, want ErrNotFound", err)
	}
}

func TestContactListNeverNil(t *testing.T) {
	svc := NewContactService(newFakeContactStore())
	queries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if queries == nil {
		t.Error("List returned nil slice")
	}
}
