package cart_test

import (
	"context"
	"errors"
	"testing"

	"kitten-shop/internal/adapters/storage/memory"
	"kitten-shop/internal/domain/cart"
	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/platform/logger"
)

type stubSource struct{ cats []catalog.Cat }

func (s stubSource) Fetch(ctx context.Context) ([]catalog.Cat, error) { return s.cats, nil }

func loadedCatalog(t *testing.T, cats []catalog.Cat) *catalog.Store {
	t.Helper()
	store := catalog.NewStore(stubSource{cats: cats})
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return store
}

type failingStore struct {
	loadErr error
	saveErr error
	ids     []int
}

func (f *failingStore) Load() ([]int, error) { return f.ids, f.loadErr }
func (f *failingStore) Save(ids []int) error { return f.saveErr }

func TestService_AddIsIdempotent(t *testing.T) {
	svc := cart.New(memory.NewCartStore(), logger.Nop())

	if !svc.Add(3) {
		t.Fatal("first add should change the cart")
	}
	if svc.Add(3) {
		t.Fatal("second add of the same id should be a no-op")
	}
	if got := svc.Count(); got != 1 {
		t.Fatalf("count = %d, want 1", got)
	}
	if !svc.Contains(3) {
		t.Fatal("cart should contain id 3")
	}
}

func TestService_RemoveAndClear(t *testing.T) {
	svc := cart.New(memory.NewCartStore(), logger.Nop())
	svc.Add(1)
	svc.Add(2)
	svc.Add(3)

	svc.Remove(2)
	if got := svc.IDs(); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("after remove: ids = %v", got)
	}

	svc.Remove(99) // absent id is a no-op
	if got := svc.Count(); got != 2 {
		t.Fatalf("after removing absent id: count = %d", got)
	}

	svc.Clear()
	if got := svc.Count(); got != 0 {
		t.Fatalf("after clear: count = %d", got)
	}
}

func TestService_RestoresFromStore(t *testing.T) {
	store := memory.NewCartStore()

	first := cart.New(store, logger.Nop())
	first.Add(5)
	first.Add(7)

	second := cart.New(store, logger.Nop())
	if got := second.IDs(); len(got) != 2 || got[0] != 5 || got[1] != 7 {
		t.Fatalf("restored ids = %v, want [5 7]", got)
	}
}

func TestService_CorruptStoreStartsEmpty(t *testing.T) {
	store := &failingStore{loadErr: errors.New("corrupt state")}

	svc := cart.New(store, logger.Nop())
	if got := svc.Count(); got != 0 {
		t.Fatalf("count = %d, want 0", got)
	}
}

func TestService_RestoreDropsDuplicates(t *testing.T) {
	store := &failingStore{ids: []int{4, 4, 9, 4}}

	svc := cart.New(store, logger.Nop())
	if got := svc.IDs(); len(got) != 2 || got[0] != 4 || got[1] != 9 {
		t.Fatalf("ids = %v, want [4 9]", got)
	}
}

func TestService_PersistFailureKeepsCart(t *testing.T) {
	store := &failingStore{saveErr: errors.New("disk full")}

	svc := cart.New(store, logger.Nop())
	if !svc.Add(1) {
		t.Fatal("add should succeed despite the persist failure")
	}
	if !svc.Contains(1) {
		t.Fatal("cart should keep the item in memory")
	}
}

func TestService_ResolveDropsStaleIDs(t *testing.T) {
	store := loadedCatalog(t, []catalog.Cat{
		{ID: 1, Name: "Амур", Price: 42000},
		{ID: 2, Name: "Василиса", Price: 36000},
	})

	svc := cart.New(memory.NewCartStore(), logger.Nop())
	svc.Add(1)
	svc.Add(99) // gone from the catalog
	svc.Add(2)

	items := svc.Resolve(store)
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 2 {
		t.Fatalf("resolved = %v", items)
	}

	if got := svc.Total(store); got != 78000 {
		t.Fatalf("total = %d, want 78000", got)
	}
}
