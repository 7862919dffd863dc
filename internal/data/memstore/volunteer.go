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

type volunteerRepository struct {
	store *Store
}

func NewVolunteerRepository(store *Store) repository.VolunteerRepository {
	return &volunteerRepository{store: store}
}

func cloneVolunteer(v *entity.Volunteer) *entity.Volunteer {
	c := *v
	c.Skills = make([]string, len(v.Skills))
	copy(c.Skills, v.Skills)
	return &c
}

func (vr *volunteerRepository) Create(_ context.Context, volunteer *entity.Volunteer) error {
	vr.store.Insert(database.CollVolunteers, volunteer.ID.String(), cloneVolunteer(volunteer))
	return nil
}

func (vr *volunteerRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Volunteer, error) {
	for _, rec := range vr.store.List(database.CollVolunteers) {
		volunteer := rec.(*entity.Volunteer)
		if volunteer.UserID == userID {
			return cloneVolunteer(volunteer), nil
		}
	}
	return nil, nil
}

func (vr *volunteerRepository) List(_ context.Context, filter repository.VolunteerFilter, limit, offset int) ([]*entity.Volunteer, error) {
	matched := []*entity.Volunteer{}
	for _, rec := range vr.store.List(database.CollVolunteers) {
		volunteer := rec.(*entity.Volunteer)
		if filter.Skill != "" && !volunteer.HasSkill(filter.Skill) {
			continue
		}
		if filter.Availability != "" && volunteer.Availability != filter.Availability {
			continue
		}
		matched = append(matched, cloneVolunteer(volunteer))
	}
	return window(matched, limit, offset), nil
}

func (vr *volunteerRepository) Update(_ context.Context, volunteer *entity.Volunteer) error {
	volunteer.UpdatedAt = time.Now()
	if !vr.store.Update(database.CollVolunteers, volunteer.ID.String(), cloneVolunteer(volunteer)) {
		return fmt.Errorf("volunteer for user %s not found", volunteer.UserID.String())
	}
	return nil
}
