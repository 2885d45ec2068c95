package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"

	"trichygold-order/internal/adapters/persistence/models"
	"trichygold-order/internal/adapters/persistence/testutil"
	"trichygold-order/internal/core/domain"

	"gorm.io/gorm"
)

func items(pairs ...interface{}) domain.Items {
	var out domain.Items
	for i := 0; i < len(pairs); i += 2 {
		out.Add(pairs[i].(domain.Item), int64(pairs[i+1].(int)))
	}
	return out
}

func TestOrderRepoIncrementAccumulates(t *testing.T) {
	db := testutil.DB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	scope := OrderScope{EmployeeID: "emp-1", Shop: domain.ShopRestaurant1, Month: 3, Year: 2025}

	first, err := repo.Increment(ctx, scope, "emp-1", items(domain.ItemKarakTea, 2, domain.ItemCoffee, 1))
	if err != nil {
		t.Fatalf("Increment #1: %v", err)
	}
	if first.Status != string(domain.StatusPending) {
		t.Fatalf("expected pending status, got %q", first.Status)
	}

	second, err := repo.Increment(ctx, scope, "emp-1", items(domain.ItemKarakTea, 3))
	if err != nil {
		t.Fatalf("Increment #2: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the same aggregate, got %s and %s", first.ID, second.ID)
	}

	got := second.Items()
	if got.Get(domain.ItemKarakTea) != 5 || got.Get(domain.ItemCoffee) != 1 || got.Total() != 6 {
		t.Fatalf("unexpected counts: %+v", got.Map())
	}

	var count int64
	db.Model(&models.OrderAggregate{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one aggregate, got %d", count)
	}
}

func TestOrderRepoScopesAreIndependent(t *testing.T) {
	db := testutil.DB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	scopes := []OrderScope{
		{EmployeeID: "emp-1", Shop: domain.ShopRestaurant1, Month: 3, Year: 2025},
		{EmployeeID: "emp-1", Shop: domain.ShopRestaurant2, Month: 3, Year: 2025},
		{EmployeeID: "emp-1", Shop: domain.ShopRestaurant1, Month: 4, Year: 2025},
		{EmployeeID: "emp-2", Shop: domain.ShopRestaurant1, Month: 3, Year: 2025},
	}
	for _, s := range scopes {
		if _, err := repo.Increment(ctx, s, s.EmployeeID, items(domain.ItemRani, 1)); err != nil {
			t.Fatalf("Increment %+v: %v", s, err)
		}
	}

	var count int64
	db.Model(&models.OrderAggregate{}).Count(&count)
	if count != int64(len(scopes)) {
		t.Fatalf("expected %d aggregates, got %d", len(scopes), count)
	}

	emp := "emp-1"
	rows, err := repo.Find(ctx, OrderFilter{EmployeeID: &emp, Month: 3, Year: 2025})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 aggregates for emp-1 in March, got %d", len(rows))
	}

	shop := domain.ShopRestaurant1
	rows, err = repo.Find(ctx, OrderFilter{Shop: &shop, Month: 3, Year: 2025})
	if err != nil {
		t.Fatalf("Find by shop: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 restaurant1 aggregates in March, got %d", len(rows))
	}
}

func TestOrderRepoConcurrentIncrements(t *testing.T) {
	db := testutil.DB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	scope := OrderScope{EmployeeID: "emp-1", Shop: domain.ShopRestaurant2, Month: 7, Year: 2025}

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Increment(ctx, scope, "emp-1", items(domain.ItemShawarma, 1, domain.ItemSandwich, 2)); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("Increment: %v", err)
	}

	row, err := repo.GetByScope(ctx, scope)
	if err != nil {
		t.Fatalf("GetByScope: %v", err)
	}
	got := row.Items()
	if got.Get(domain.ItemShawarma) != workers || got.Get(domain.ItemSandwich) != 2*workers {
		t.Fatalf("lost updates: %+v", got.Map())
	}
}

func TestOrderRepoStatusAndDelete(t *testing.T) {
	db := testutil.DB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	row, err := repo.Increment(ctx, OrderScope{EmployeeID: "emp-1", Shop: domain.ShopRestaurant1, Month: 1, Year: 2026}, "emp-1", items(domain.ItemMilkTea, 4))
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}

	if err := repo.UpdateStatus(ctx, row.ID, domain.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != string(domain.StatusCompleted) {
		t.Fatalf("expected completed, got %q", got.Status)
	}
	if got.Items().Get(domain.ItemMilkTea) != 4 {
		t.Fatalf("status update must not touch counts")
	}

	if err := repo.Delete(ctx, row.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, row.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := repo.Delete(ctx, row.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestEmployeeRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	admin := testutil.SeedEmployee(t, ctx, db, "admin", "pw", domain.RoleAdmin)
	testutil.SeedEmployee(t, ctx, db, "sam", "pw", domain.RoleEmployee)

	if admin.ID == "" {
		t.Fatalf("expected a generated ID")
	}

	got, err := repo.GetByUsername(ctx, "admin")
	if err != nil || got.ID != admin.ID {
		t.Fatalf("GetByUsername: %v %+v", err, got)
	}
	if _, err := repo.GetByUsername(ctx, "Admin"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("username lookup must be exact, got %v", err)
	}

	exists, err := repo.ExistsByUsername(ctx, "sam")
	if err != nil || !exists {
		t.Fatalf("ExistsByUsername: %v %v", exists, err)
	}

	admins, err := repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil || admins != 1 {
		t.Fatalf("CountByRole: %d %v", admins, err)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: %d %v", len(all), err)
	}

	dup := &models.Employee{Name: "Other", Username: "sam", Password: "x", Role: string(domain.RoleEmployee)}
	if err := repo.Create(ctx, dup); err == nil {
		t.Fatalf("expected unique violation on duplicate username")
	}
}
