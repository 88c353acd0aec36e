// Package repotest provides in-memory implementations of the store
// contracts for tests that should not need a running PostgreSQL.
package repotest

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/localsearch/backend/internal/models"
	"github.com/localsearch/backend/internal/repository"
)

type MemoryUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  []models.User
}

func NewMemoryUserRepo() *MemoryUserRepo { return &MemoryUserRepo{} }

func (r *MemoryUserRepo) ExistsByUsername(username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryUserRepo) ExistsByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	u.ID = r.nextID
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users = append(r.users, *u)
	return nil
}

func (r *MemoryUserRepo) FindByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryUserRepo) FindByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryUserRepo) Update(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.users {
		if existing.ID == u.ID {
			u.UpdatedAt = time.Now()
			r.users[i] = *u
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *MemoryUserRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type MemoryCategoryRepo struct {
	mu         sync.Mutex
	nextID     uint
	categories []models.Category
}

func NewMemoryCategoryRepo() *MemoryCategoryRepo { return &MemoryCategoryRepo{} }

func (r *MemoryCategoryRepo) All() ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *MemoryCategoryRepo) Create(c *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	r.categories = append(r.categories, *c)
	return nil
}

func (r *MemoryCategoryRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.categories)), nil
}

func (r *MemoryCategoryRepo) byID(id uint) *models.Category {
	for i := range r.categories {
		if r.categories[i].ID == id {
			copied := r.categories[i]
			return &copied
		}
	}
	return nil
}

type MemoryBusinessRepo struct {
	mu         sync.Mutex
	nextID     uint
	businesses []models.Business
	categories *MemoryCategoryRepo
}

func NewMemoryBusinessRepo(categories *MemoryCategoryRepo) *MemoryBusinessRepo {
	return &MemoryBusinessRepo{categories: categories}
}

func (r *MemoryBusinessRepo) All() ([]models.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Business, len(r.businesses))
	for i, b := range r.businesses {
		b.Category = r.categories.byID(b.CategoryID)
		out[i] = b
	}
	return out, nil
}

func (r *MemoryBusinessRepo) Search(query string) ([]models.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Business
	for _, b := range r.businesses {
		category := r.categories.byID(b.CategoryID)
		categoryName := ""
		if category != nil {
			categoryName = category.Name
		}
		if likeContains(b.Name, query) || likeContains(b.Description, query) || likeContains(categoryName, query) {
			b.Category = category
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBusinessRepo) FindByID(id uint) (*models.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.businesses {
		if b.ID == id {
			copied := b
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryBusinessRepo) Create(b *models.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	r.businesses = append(r.businesses, *b)
	return nil
}

func (r *MemoryBusinessRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.businesses)), nil
}

// likeContains mirrors SQL `value LIKE '%query%'`: case-sensitive, with %
// and _ in the query keeping their wildcard meaning.
func likeContains(value, query string) bool {
	var re strings.Builder
	re.WriteString("(?s)")
	for _, ch := range query {
		switch ch {
		case '%':
			re.WriteString(".*")
		case '_':
			re.WriteString(".")
		default:
			re.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	matched, err := regexp.MatchString(re.String(), value)
	return err == nil && matched
}
