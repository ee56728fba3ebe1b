package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/starlog/catalog-api/internal/core/domain"
)

func TestRoleService_EnsureRoles_Idempotent(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	if err := svc.EnsureRoles(context.Background()); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}
	first, _ := repo.FindAll(context.Background())

	if err := svc.EnsureRoles(context.Background()); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	second, _ := repo.FindAll(context.Background())

	if len(second) != 3 {
		t.Fatalf("expected exactly 3 roles, got %d", len(second))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("bootstrap changed existing rows: %v vs %v", first, second)
	}

	names := make([]string, 0, len(second))
	for _, r := range second {
		names = append(names, r.Name)
	}
	if !reflect.DeepEqual(names, domain.AllRoles) {
		t.Fatalf("expected roles in bootstrap order, got %v", names)
	}
}

func TestRoleService_FindByName(t *testing.T) {
	svc := NewRoleService(newSeededRoleRepo(), zerolog.Nop())

	role, err := svc.FindByName(context.Background(), domain.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("FindByName returned error: %v", err)
	}
	if role.Name != domain.RoleSuperAdmin {
		t.Fatalf("unexpected role: %+v", role)
	}

	// Names compare case-sensitively.
	if _, err := svc.FindByName(context.Background(), "Admin"); err != domain.ErrRoleNotFound {
		t.Fatalf("expected ErrRoleNotFound for wrong case, got %v", err)
	}
}
