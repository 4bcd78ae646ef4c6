package seeder

import (
	"context"
	"testing"
	"time"

	"employee-portal/pkg/paseto"
	util "employee-portal/pkg/utils"
	"employee-portal/repository/repotest"
	"employee-portal/services"
)

func newAuth(t *testing.T, store *repotest.Store) *services.AuthService {
	t.Helper()
	secret, err := util.GenerateBase64Key(32)
	if err != nil {
		t.Fatal(err)
	}
	maker, err := paseto.NewPasetoMaker(secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return services.NewAuthService(store.Users(), maker, time.Now)
}

func TestSeedAdmin(t *testing.T) {
	store := repotest.NewStore()
	auth := newAuth(t, store)

	created, err := SeedAdmin(auth, "root@x.io", "secret1", "ADM-001")
	if err != nil || !created {
		t.Fatalf("SeedAdmin() = %v, %v; want true, nil", created, err)
	}

	created, err = SeedAdmin(auth, "root@x.io", "secret1", "ADM-001")
	if err != nil || created {
		t.Fatalf("second SeedAdmin() = %v, %v; want false, nil", created, err)
	}

	user, err := auth.Authenticate(context.Background(), "root@x.io", "secret1")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if !user.IsAdmin() {
		t.Errorf("seeded role = %s, want ADMIN", user.Role)
	}
	if store.UserCount() != 1 {
		t.Errorf("UserCount() = %d, want 1", store.UserCount())
	}
}

func TestSeedAdminSkippedWithoutCredentials(t *testing.T) {
	store := repotest.NewStore()
	created, err := SeedAdmin(newAuth(t, store), "", "", "ADM-001")
	if err != nil || created {
		t.Fatalf("SeedAdmin() = %v, %v; want false, nil", created, err)
	}
	if store.UserCount() != 0 {
		t.Errorf("UserCount() = %d, want 0", store.UserCount())
	}
}
