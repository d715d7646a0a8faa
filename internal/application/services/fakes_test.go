package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"servija-api/internal/domain/category"
	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/request"
	"servija-api/internal/domain/user"
	"servija-api/internal/infrastructure/metrics"
	"servija-api/internal/infrastructure/mq"
)

// memStore is an in-memory stand-in for the four postgres repositories.
// It honours the same uniqueness rules as the schema.
type memStore struct {
	users      map[uuid.UUID]user.User
	providers  map[uuid.UUID]provider.Provider
	categories map[uuid.UUID]category.Category
	requests   map[uuid.UUID]request.Request

	clock  time.Time
	writes int
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uuid.UUID]user.User{},
		providers:  map[uuid.UUID]provider.Provider{},
		categories: map[uuid.UUID]category.Category{},
		requests:   map[uuid.UUID]request.Request{},
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.clock, c.writes = s.clock, s.writes
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.providers {
		c.providers[k] = cloneProvider(v)
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	return c
}

func cloneProvider(p provider.Provider) provider.Provider {
	p.Services = append([]provider.Service(nil), p.Services...)
	p.WorkPhotos = append([]string(nil), p.WorkPhotos...)
	return p
}

// seed helpers

func (s *memStore) addUser(u user.User) *user.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = user.NormalizeEmail(u.Email)
	if u.AccountType == "" {
		u.AccountType = user.AccountClient
	}
	u.CreatedAt = s.tick()
	s.users[u.ID] = u
	return &u
}

func (s *memStore) addProvider(p provider.Provider) *provider.Provider {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.tick()
	}
	if p.Services == nil {
		p.Services = []provider.Service{}
	}
	if p.WorkPhotos == nil {
		p.WorkPhotos = []string{}
	}
	s.providers[p.ID] = p
	return &p
}

func (s *memStore) addCategory(name string) *category.Category {
	c := category.Category{ID: uuid.New(), Name: name, Active: true, CreatedAt: s.tick()}
	s.categories[c.ID] = c
	return &c
}

func (s *memStore) addRequest(r request.Request) *request.Request {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = request.StatusOpen
	}
	r.CreatedAt = s.tick()
	s.requests[r.ID] = r
	return &r
}

// providersOf returns every profile pointing at ownerID.
func (s *memStore) providersOf(ownerID uuid.UUID) []provider.Provider {
	var out []provider.Provider
	for _, p := range s.providers {
		if p.UserID != nil && *p.UserID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

func emailIs(v *string, email string) bool {
	return v != nil && user.NormalizeEmail(*v) == email
}

// user.Repository

func (s *memStore) FetchUserByID(_ context.Context, id user.UUID) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memStore) FetchUserByIDForUpdate(ctx context.Context, id user.UUID) (*user.User, error) {
	return s.FetchUserByID(ctx, id)
}

func (s *memStore) FetchUserByEmail(_ context.Context, email string) (*user.User, error) {
	email = user.NormalizeEmail(email)
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memStore) EmailTakenByOther(_ context.Context, email string, id user.UUID) (bool, error) {
	email = user.NormalizeEmail(email)
	for _, u := range s.users {
		if u.Email == email && u.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) FetchUsers(_ context.Context) (user.Users, error) {
	var out user.Users
	for _, u := range s.users {
		out = append(out, &u)
	}
	return out, nil
}

func (s *memStore) CreateUser(ctx context.Context, u user.User) (*user.User, error) {
	if taken, _ := s.EmailTakenByOther(ctx, u.Email, uuid.Nil); taken {
		return nil, user.ErrEmailAlreadyExists
	}
	s.writes++
	return s.addUser(u), nil
}

func (s *memStore) UpdateUser(ctx context.Context, u user.User) (*user.User, error) {
	stored, ok := s.users[u.ID]
	if !ok {
		return nil, nil
	}
	if taken, _ := s.EmailTakenByOther(ctx, u.Email, u.ID); taken {
		return nil, user.ErrEmailAlreadyExists
	}
	u.Email = user.NormalizeEmail(u.Email)
	u.PasswordHash = stored.PasswordHash
	u.CreatedAt = stored.CreatedAt
	u.UpdatedAt = s.tick()
	s.users[u.ID] = u
	s.writes++
	return &u, nil
}

func (s *memStore) CountAdmins(_ context.Context) (int, error) {
	n := 0
	for _, u := range s.users {
		if u.IsAdmin() {
			n++
		}
	}
	return n, nil
}

func (s *memStore) DeleteUser(_ context.Context, id user.UUID) (bool, error) {
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	s.writes++
	return true, nil
}

// provider.Repository

func (s *memStore) FetchOwnershipCandidates(_ context.Context, ownerID provider.UUID, email string) (provider.Providers, error) {
	email = user.NormalizeEmail(email)
	var out provider.Providers
	for _, p := range s.providers {
		if (p.UserID != nil && *p.UserID == ownerID) || emailIs(p.UserEmail, email) {
			c := cloneProvider(p)
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		bi := out[i].UserID != nil && *out[i].UserID == ownerID
		bj := out[j].UserID != nil && *out[j].UserID == ownerID
		if bi != bj {
			return bi
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *memStore) FetchProviderByID(_ context.Context, id provider.UUID) (*provider.Provider, error) {
	p, ok := s.providers[id]
	if !ok {
		return nil, nil
	}
	c := cloneProvider(p)
	return &c, nil
}

func (s *memStore) FetchProviders(_ context.Context, f provider.Filter) (provider.Providers, error) {
	var out provider.Providers
	for _, p := range s.providers {
		if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
			continue
		}
		if f.UserID != nil && (p.UserID == nil || *p.UserID != *f.UserID) {
			continue
		}
		if f.UserEmail != nil && !emailIs(p.UserEmail, user.NormalizeEmail(*f.UserEmail)) {
			continue
		}
		if f.Active != nil && p.Active != *f.Active {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		c := cloneProvider(p)
		out = append(out, &c)
	}
	return out, nil
}

func (s *memStore) ownerTaken(ownerID *uuid.UUID, except uuid.UUID) bool {
	if ownerID == nil {
		return false
	}
	for _, p := range s.providers {
		if p.ID != except && p.UserID != nil && *p.UserID == *ownerID {
			return true
		}
	}
	return false
}

func (s *memStore) UpdateOwnership(_ context.Context, id, ownerID provider.UUID, email string) error {
	p, ok := s.providers[id]
	if !ok {
		return nil
	}
	if s.ownerTaken(&ownerID, id) {
		return provider.ErrOwnerAlreadyHasProfile
	}
	email = user.NormalizeEmail(email)
	p.UserID, p.UserEmail = &ownerID, &email
	s.providers[id] = p
	s.writes++
	return nil
}

func (s *memStore) CreateProvider(_ context.Context, p provider.Provider) (*provider.Provider, error) {
	if s.ownerTaken(p.UserID, uuid.Nil) {
		return nil, provider.ErrOwnerAlreadyHasProfile
	}
	p.ID = uuid.New()
	p.CreatedAt = s.tick()
	p.UpdatedAt = p.CreatedAt
	s.providers[p.ID] = cloneProvider(p)
	s.writes++
	return &p, nil
}

func (s *memStore) SaveProvider(_ context.Context, p provider.Provider) (*provider.Provider, error) {
	stored, ok := s.providers[p.ID]
	if !ok {
		return nil, nil
	}
	if s.ownerTaken(p.UserID, p.ID) {
		return nil, provider.ErrOwnerAlreadyHasProfile
	}
	p.CreatedAt = stored.CreatedAt
	p.UpdatedAt = s.tick()
	s.providers[p.ID] = cloneProvider(p)
	s.writes++
	return &p, nil
}

func (s *memStore) ReassignOwnerEmail(_ context.Context, ownerID provider.UUID, oldEmail, newEmail string) (int64, error) {
	var n int64
	for id, p := range s.providers {
		if (p.UserID != nil && *p.UserID == ownerID) || emailIs(p.UserEmail, oldEmail) {
			email := newEmail
			p.UserEmail = &email
			s.providers[id] = p
			n++
		}
	}
	s.writes++
	return n, nil
}

func (s *memStore) SetActiveByOwner(_ context.Context, ownerID provider.UUID, email string, active bool) (int64, error) {
	var n int64
	for id, p := range s.providers {
		if (p.UserID != nil && *p.UserID == ownerID) || emailIs(p.UserEmail, user.NormalizeEmail(email)) {
			p.Active = active
			s.providers[id] = p
			n++
		}
	}
	s.writes++
	return n, nil
}

func (s *memStore) RefreshCategoryName(_ context.Context, categoryID provider.UUID, name string) (int64, error) {
	var n int64
	for id, p := range s.providers {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			v := name
			p.CategoryName = &v
			s.providers[id] = p
			n++
		}
	}
	s.writes++
	return n, nil
}

func (s *memStore) CountByCategory(_ context.Context, categoryID provider.UUID) (int, error) {
	n := 0
	for _, p := range s.providers {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) DeleteByOwner(_ context.Context, ownerID provider.UUID) (int64, error) {
	var n int64
	for id, p := range s.providers {
		if p.UserID != nil && *p.UserID == ownerID {
			delete(s.providers, id)
			n++
		}
	}
	s.writes++
	return n, nil
}

// category.Repository

func (s *memStore) FetchCategoryByID(_ context.Context, id category.UUID) (*category.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memStore) FetchCategories(_ context.Context, active *bool) (category.Categories, error) {
	var out category.Categories
	for _, c := range s.categories {
		if active != nil && c.Active != *active {
			continue
		}
		out = append(out, &c)
	}
	return out, nil
}

func (s *memStore) CreateCategory(_ context.Context, c category.Category) (*category.Category, error) {
	c.ID = uuid.New()
	c.CreatedAt = s.tick()
	s.categories[c.ID] = c
	s.writes++
	return &c, nil
}

func (s *memStore) UpdateCategory(_ context.Context, c category.Category) (*category.Category, error) {
	if _, ok := s.categories[c.ID]; !ok {
		return nil, nil
	}
	c.UpdatedAt = s.tick()
	s.categories[c.ID] = c
	s.writes++
	return &c, nil
}

func (s *memStore) DeleteCategory(_ context.Context, id category.UUID) (bool, error) {
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	s.writes++
	return true, nil
}

// request.Repository

func (s *memStore) FetchRequestByID(_ context.Context, id request.UUID) (*request.Request, error) {
	r, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *memStore) FetchRequests(_ context.Context, f request.Filter) (request.Requests, error) {
	var out request.Requests
	for _, r := range s.requests {
		if f.ClientEmail != nil && user.NormalizeEmail(r.ClientEmail) != user.NormalizeEmail(*f.ClientEmail) {
			continue
		}
		if f.ProviderEmail != nil && !emailIs(r.ProviderEmail, user.NormalizeEmail(*f.ProviderEmail)) {
			continue
		}
		if f.Status != nil && r.Status != *f.Status {
			continue
		}
		if f.Participant != nil {
			own := user.NormalizeEmail(*f.Participant)
			if user.NormalizeEmail(r.ClientEmail) != own && !emailIs(r.ProviderEmail, own) {
				continue
			}
		}
		out = append(out, &r)
	}
	return out, nil
}

func (s *memStore) CreateRequest(_ context.Context, r request.Request) (*request.Request, error) {
	s.writes++
	return s.addRequest(r), nil
}

func (s *memStore) UpdateRequest(_ context.Context, r request.Request) (*request.Request, error) {
	if _, ok := s.requests[r.ID]; !ok {
		return nil, nil
	}
	r.UpdatedAt = s.tick()
	s.requests[r.ID] = r
	s.writes++
	return &r, nil
}

func (s *memStore) ReplaceClientEmail(_ context.Context, clientID request.UUID, oldEmail, newEmail string) (int64, error) {
	var n int64
	for id, r := range s.requests {
		if (r.ClientID != nil && *r.ClientID == clientID) || user.NormalizeEmail(r.ClientEmail) == oldEmail {
			r.ClientEmail = newEmail
			s.requests[id] = r
			n++
		}
	}
	return n, nil
}

func (s *memStore) ReplaceProviderEmail(_ context.Context, oldEmail, newEmail string) (int64, error) {
	var n int64
	for id, r := range s.requests {
		if emailIs(r.ProviderEmail, oldEmail) {
			v := newEmail
			r.ProviderEmail = &v
			s.requests[id] = r
			n++
		}
	}
	return n, nil
}

func (s *memStore) ReplaceClientName(_ context.Context, clientID request.UUID, email, name string) (int64, error) {
	var n int64
	for id, r := range s.requests {
		if (r.ClientID != nil && *r.ClientID == clientID) || user.NormalizeEmail(r.ClientEmail) == email {
			v := name
			r.ClientName = &v
			s.requests[id] = r
			n++
		}
	}
	return n, nil
}

func (s *memStore) ReplaceProviderName(_ context.Context, email, name string) (int64, error) {
	var n int64
	for id, r := range s.requests {
		if emailIs(r.ProviderEmail, email) {
			v := name
			r.ProviderName = &v
			s.requests[id] = r
			n++
		}
	}
	return n, nil
}

// memTx restores the store when fn fails, like a rolled back transaction.
type memTx struct {
	store *memStore
	depth int
}

func (m *memTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.depth > 0 {
		return fn(ctx)
	}
	snapshot := m.store.clone()
	m.depth++
	err := fn(ctx)
	m.depth--
	if err != nil {
		*m.store = *snapshot
	}
	return err
}

type memCache struct {
	names       map[uuid.UUID]string
	invalidated []uuid.UUID
}

func (c *memCache) Get(_ context.Context, id uuid.UUID) (string, bool) {
	name, ok := c.names[id]
	return name, ok
}

func (c *memCache) Put(_ context.Context, id uuid.UUID, name string) { c.names[id] = name }

func (c *memCache) Invalidate(_ context.Context, id uuid.UUID) {
	delete(c.names, id)
	c.invalidated = append(c.invalidated, id)
}

type fakePublisher struct {
	events []mq.Event
	full   bool
}

func (p *fakePublisher) Emit(e mq.Event) bool {
	if p.full {
		return false
	}
	p.events = append(p.events, e)
	return true
}

func (p *fakePublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeTokens struct {
	IssueFunc func(userID, email, accountType, role string) (string, error)
}

func (f *fakeTokens) Issue(userID, email, accountType, role string) (string, error) {
	if f.IssueFunc != nil {
		return f.IssueFunc(userID, email, accountType, role)
	}
	return "token-" + userID, nil
}

type harness struct {
	store     *memStore
	tx        *memTx
	cache     *memCache
	pub       *fakePublisher
	counter   *prometheus.CounterVec
	profile   *ProfileService
	auth      *AuthService
	users     *UserService
	category  *CategoryService
	providers *ProviderService
	requests  *RequestService
}

func newHarness() *harness {
	store := newMemStore()
	tx := &memTx{store: store}
	cache := &memCache{names: map[uuid.UUID]string{}}
	pub := &fakePublisher{}
	counter := metrics.NewCounter(prometheus.NewRegistry())
	log := zap.NewNop()

	categories := NewCategoryService(tx, store, store, cache, log, counter)
	propagator := NewPropagator(store, store, log, counter)
	reconciler := NewReconciler(store, log, counter)

	return &harness{
		store:     store,
		tx:        tx,
		cache:     cache,
		pub:       pub,
		counter:   counter,
		profile:   NewProfileService(tx, store, store, categories, reconciler, propagator, pub, log, counter).(*ProfileService),
		auth:      NewAuthService(tx, store, &fakeTokens{}, propagator, pub, log, counter).(*AuthService),
		users:     NewUserService(tx, store, store, pub, log, counter).(*UserService),
		category:  categories.(*CategoryService),
		providers: NewProviderService(tx, store, store, pub, log, counter).(*ProviderService),
		requests:  NewRequestService(store, store, log, counter).(*RequestService),
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func nopLog() *zap.Logger { return zap.NewNop() }
