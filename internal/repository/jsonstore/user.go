package jsonstore

import (
	"context"
	"strings"

	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
	"github.com/medichq/medic-api/pkg/errors"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// GetByEmail matches case-insensitively; email uniqueness is enforced on
// this lookup at registration time.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	l := r.store.lock(collectionUsers)
	l.Lock()
	defer l.Unlock()

	var users []model.User
	if err := r.store.load(collectionUsers, &users); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	for i := range users {
		if strings.ToLower(users[i].Email) == needle {
			return &users[i], nil
		}
	}
	return nil, errors.NotFound("user")
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	l := r.store.lock(collectionUsers)
	l.Lock()
	defer l.Unlock()

	var users []model.User
	if err := r.store.load(collectionUsers, &users); err != nil {
		return err
	}
	users = append(users, *user)
	return r.store.save(collectionUsers, users)
}
