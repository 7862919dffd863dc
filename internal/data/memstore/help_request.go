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

type helpRequestRepository struct {
	store *Store
}

func NewHelpRequestRepository(store *Store) repository.HelpRequestRepository {
	return &helpRequestRepository{store: store}
}

func cloneHelpRequest(r *entity.HelpRequest) *entity.HelpRequest {
	c := *r
	if r.VolunteerID != nil {
		vid := *r.VolunteerID
		c.VolunteerID = &vid
	}
	c.Tracking = make([]entity.TrackingEntry, len(r.Tracking))
	copy(c.Tracking, r.Tracking)
	return &c
}

func (hr *helpRequestRepository) Create(_ context.Context, request *entity.HelpRequest) error {
	hr.store.Insert(database.CollHelpRequests, request.ID.String(), cloneHelpRequest(request))
	return nil
}

func (hr *helpRequestRepository) FindByRequestID(_ context.Context, requestID string) (*entity.HelpRequest, error) {
	for _, rec := range hr.store.List(database.CollHelpRequests) {
		request := rec.(*entity.HelpRequest)
		if request.RequestID == requestID {
			return cloneHelpRequest(request), nil
		}
	}
	return nil, nil
}

func (hr *helpRequestRepository) ListPublic(_ context.Context, limit, offset int) ([]*entity.HelpRequest, error) {
	return hr.list(func(r *entity.HelpRequest) bool { return r.IsPublic }, limit, offset), nil
}

func (hr *helpRequestRepository) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.HelpRequest, error) {
	return hr.list(func(r *entity.HelpRequest) bool {
		if r.RequesterID == userID {
			return true
		}
		return r.VolunteerID != nil && *r.VolunteerID == userID
	}, limit, offset), nil
}

func (hr *helpRequestRepository) list(match func(*entity.HelpRequest) bool, limit, offset int) []*entity.HelpRequest {
	matched := []*entity.HelpRequest{}
	for _, rec := range hr.store.List(database.CollHelpRequests) {
		request := rec.(*entity.HelpRequest)
		if match(request) {
			matched = append(matched, cloneHelpRequest(request))
		}
	}
	return window(matched, limit, offset)
}

func (hr *helpRequestRepository) Update(_ context.Context, request *entity.HelpRequest) error {
	request.UpdatedAt = time.Now()
	if !hr.store.Update(database.CollHelpRequests, request.ID.String(), cloneHelpRequest(request)) {
		return fmt.Errorf("help request %s not found", request.RequestID)
	}
	return nil
}
