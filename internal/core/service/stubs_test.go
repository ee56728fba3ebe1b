package service

import (
	"context"
	"sync"

	"github.com/starlog/catalog-api/internal/core/domain"
	"github.com/starlog/catalog-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateRoles(_ context.Context, userID int64, roles []domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Roles = append([]domain.Role(nil), roles...)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRoleRepo struct {
	mu     sync.Mutex
	nextID int64
	roles  []domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{}
}

// newSeededRoleRepo returns a role repo with the full closed enumeration.
func newSeededRoleRepo() *stubRoleRepo {
	repo := newStubRoleRepo()
	for _, name := range domain.AllRoles {
		_, _ = repo.Create(context.Background(), name)
	}
	return repo
}

func (r *stubRoleRepo) Create(_ context.Context, name string) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.roles {
		if existing.Name == name {
			role := existing
			return &role, nil
		}
	}
	r.nextID++
	role := domain.Role{ID: r.nextID, Name: name}
	r.roles = append(r.roles, role)
	return &role, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.roles {
		if existing.Name == name {
			role := existing
			return &role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Role(nil), r.roles...), nil
}

type stubFilmRepo struct {
	mu     sync.Mutex
	nextID int64
	films  map[int64]*domain.Film
}

func newStubFilmRepo() *stubFilmRepo {
	return &stubFilmRepo{films: make(map[int64]*domain.Film)}
}

func cloneFilm(f *domain.Film) *domain.Film {
	clone := *f
	return &clone
}

func (r *stubFilmRepo) Create(_ context.Context, film *domain.Film) (*domain.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	copy := cloneFilm(film)
	copy.ID = r.nextID
	r.films[copy.ID] = cloneFilm(copy)
	return copy, nil
}

func (r *stubFilmRepo) FindByID(_ context.Context, id int64) (*domain.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.films[id]; ok {
		return cloneFilm(f), nil
	}
	return nil, domain.ErrFilmNotFound
}

func (r *stubFilmRepo) FindByTitle(_ context.Context, title string) (*domain.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.films {
		if f.Title == title {
			return cloneFilm(f), nil
		}
	}
	return nil, domain.ErrFilmNotFound
}

func (r *stubFilmRepo) FindAll(_ context.Context) ([]domain.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	films := make([]domain.Film, 0, len(r.films))
	for id := int64(1); id <= r.nextID; id++ {
		if f, ok := r.films[id]; ok {
			films = append(films, *cloneFilm(f))
		}
	}
	return films, nil
}

func (r *stubFilmRepo) FindAllTitles(_ context.Context) ([]string, error) {
	films, _ := r.FindAll(context.Background())
	titles := make([]string, 0, len(films))
	for _, f := range films {
		titles = append(titles, f.Title)
	}
	return titles, nil
}

func (r *stubFilmRepo) Update(_ context.Context, film *domain.Film) (*domain.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.films[film.ID]; !ok {
		return nil, domain.ErrFilmNotFound
	}
	r.films[film.ID] = cloneFilm(film)
	return cloneFilm(film), nil
}

func (r *stubFilmRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.films[id]; !ok {
		return domain.ErrFilmNotFound
	}
	delete(r.films, id)
	return nil
}

var _ ports.UserRepository = (*stubUserRepo)(nil)
var _ ports.RoleRepository = (*stubRoleRepo)(nil)
var _ ports.FilmRepository = (*stubFilmRepo)(nil)
