package memstore

import (
	"context"
	"fmt"
	"time"

	"helper-booking/internal/data/entity"
	"helper-booking/internal/data/repository"
	"helper-booking/pkg/database"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.Phone != nil {
		phone := *u.Phone
		c.Phone = &phone
	}
	return &c
}

func (ur *userRepository) Create(_ context.Context, user *entity.User) error {
	ur.store.Insert(database.CollUsers, user.ID.String(), cloneUser(user))
	return nil
}

func (ur *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	rec, ok := ur.store.Get(database.CollUsers, id.String())
	if !ok {
		return nil, nil
	}
	return cloneUser(rec.(*entity.User)), nil
}

func (ur *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, rec := range ur.store.List(database.CollUsers) {
		user := rec.(*entity.User)
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (ur *userRepository) Update(_ context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	if !ur.store.Update(database.CollUsers, user.ID.String(), cloneUser(user)) {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	return nil
}
