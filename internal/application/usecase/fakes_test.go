package usecase_test

import (
	"errors"
	"sync"

	"github.com/jhoicas/tasklist-api/internal/domain"
	"github.com/jhoicas/tasklist-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores postgres: (nil, nil) en lookups sin fila, ErrDuplicate en
// violaciones de unicidad.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	// failAll fuerza errores de infraestructura para probar la propagación.
	failAll bool
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("db caída")
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*entity.Task)}
}

func (f *fakeTaskRepo) Create(t *entity.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t.ID = f.nextID
	cp := *t
	f.tasks[t.ID] = &cp
	return nil
}

func (f *fakeTaskRepo) GetByOwnerAndID(ownerID string, id int64) (*entity.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTaskRepo) ListByOwner(ownerID string) ([]*entity.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Task
	for id := int64(1); id <= f.nextID; id++ {
		if t, ok := f.tasks[id]; ok && t.UserID == ownerID {
			cp := *t
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeTaskRepo) Update(t *entity.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.tasks[t.ID]; ok && cur.UserID == t.UserID {
		cur.Completed = t.Completed
	}
	return nil
}

func (f *fakeTaskRepo) Delete(ownerID string, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.tasks[id]; ok && t.UserID == ownerID {
		delete(f.tasks, id)
	}
	return nil
}

type fakeRoleRepo struct {
	mu       sync.Mutex
	byName   map[string]*entity.Role
	assigned map[string]map[string]bool // userID -> roleID -> asignado
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		byName:   make(map[string]*entity.Role),
		assigned: make(map[string]map[string]bool),
	}
}

func (f *fakeRoleRepo) Create(r *entity.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byName[r.Name]; ok {
		return domain.ErrDuplicate
	}
	cp := *r
	f.byName[r.Name] = &cp
	return nil
}

func (f *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byName[name]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoleRepo) AssignToUser(userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assigned[userID] == nil {
		f.assigned[userID] = make(map[string]bool)
	}
	f.assigned[userID][roleID] = true
	return nil
}

func (f *fakeRoleRepo) ListNamesByUser(userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for _, r := range f.byName {
		if f.assigned[userID][r.ID] {
			names = append(names, r.Name)
		}
	}
	return names, nil
}
