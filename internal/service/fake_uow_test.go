package service

import (
	"context"
	"sort"
	"sync"

	"faq-chat-be/internal/entity"
	"faq-chat-be/internal/repository/contract"
	"faq-chat-be/internal/repository/specification"
	"faq-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// memoryStore backs a fake unit of work. Specifications are interpreted by
// type, which is enough for the filters the services use.
type memoryStore struct {
	mu       sync.Mutex
	entries  map[uuid.UUID]*entity.FaqEntry
	setting  *entity.KnowledgeBaseSetting
	admins   map[string]*entity.AdminUser
	commits  int
	rollback int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[uuid.UUID]*entity.FaqEntry),
		admins:  make(map[string]*entity.AdminUser),
	}
}

func (s *memoryStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{store: s}
}

type memoryUnitOfWork struct {
	store *memoryStore
	open  bool
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error {
	u.open = true
	return nil
}

func (u *memoryUnitOfWork) Commit() error {
	if u.open {
		u.store.commits++
		u.open = false
	}
	return nil
}

func (u *memoryUnitOfWork) Rollback() error {
	if u.open {
		u.store.rollback++
		u.open = false
	}
	return nil
}

func (u *memoryUnitOfWork) FaqEntryRepository() contract.FaqEntryRepository {
	return memoryFaqRepo{u.store}
}

func (u *memoryUnitOfWork) KnowledgeBaseSettingRepository() contract.KnowledgeBaseSettingRepository {
	return memorySettingRepo{u.store}
}

func (u *memoryUnitOfWork) AdminUserRepository() contract.AdminUserRepository {
	return memoryAdminRepo{u.store}
}

type memoryFaqRepo struct{ s *memoryStore }

func (r memoryFaqRepo) Create(ctx context.Context, entry *entity.FaqEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry.Id == uuid.Nil {
		entry.Id = uuid.New()
	}
	cp := *entry
	r.s.entries[entry.Id] = &cp
	return nil
}

func (r memoryFaqRepo) CreateBatch(ctx context.Context, entries []*entity.FaqEntry) error {
	for _, e := range entries {
		if err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r memoryFaqRepo) Update(ctx context.Context, entry *entity.FaqEntry) error {
	return r.Create(ctx, entry)
}

func (r memoryFaqRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.entries, id)
	return nil
}

func (r memoryFaqRepo) DeleteAllUnscoped(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.entries = make(map[uuid.UUID]*entity.FaqEntry)
	return nil
}

func (r memoryFaqRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r memoryFaqRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*entity.FaqEntry, 0, len(r.s.entries))
	for _, e := range r.s.entries {
		if matchesFaqSpecs(e, specs) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			if p.Offset >= len(out) {
				return []*entity.FaqEntry{}, nil
			}
			end := p.Offset + p.Limit
			if end > len(out) {
				end = len(out)
			}
			out = out[p.Offset:end]
		}
	}
	return out, nil
}

func (r memoryFaqRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchesFaqSpecs(e *entity.FaqEntry, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if e.Id != s.ID {
				return false
			}
		case specification.ByCategory:
			if e.Category != s.Category {
				return false
			}
		case specification.ActiveOnly:
			if !e.IsActive {
				return false
			}
		}
	}
	return true
}

type memorySettingRepo struct{ s *memoryStore }

func (r memorySettingRepo) FindLatest(ctx context.Context) (*entity.KnowledgeBaseSetting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.setting == nil {
		return nil, nil
	}
	cp := *r.s.setting
	return &cp, nil
}

func (r memorySettingRepo) Save(ctx context.Context, setting *entity.KnowledgeBaseSetting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *setting
	r.s.setting = &cp
	return nil
}

type memoryAdminRepo struct{ s *memoryStore }

func (r memoryAdminRepo) Create(ctx context.Context, user *entity.AdminUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	cp := *user
	r.s.admins[user.Email] = &cp
	return nil
}

func (r memoryAdminRepo) Update(ctx context.Context, user *entity.AdminUser) error {
	return r.Create(ctx, user)
}

func (r memoryAdminRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, spec := range specs {
		if s, ok := spec.(specification.ByEmail); ok {
			if u, found := r.s.admins[s.Email]; found {
				cp := *u
				return &cp, nil
			}
		}
	}
	return nil, nil
}
