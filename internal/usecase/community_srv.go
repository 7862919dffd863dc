package usecase

import (
	"context"
	"fmt"
	"time"

	"helper-booking/internal/data/entity"
	"helper-booking/internal/data/repository"
	"helper-booking/internal/dto/request"
	"helper-booking/internal/dto/response"
	"helper-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommunityService interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, role entity.UserRole, req *request.CreateHelpRequestRequest) (*response.HelpRequestResponse, error)
	ListRequests(ctx context.Context, userID uuid.UUID, mine bool, p *request.PaginatedRequest) ([]*response.HelpRequestResponse, error)
	GetRequest(ctx context.Context, userID uuid.UUID, role entity.UserRole, requestID string) (*response.HelpRequestResponse, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, role entity.UserRole, requestID string, req *request.UpdateHelpStatusRequest) (*response.HelpRequestResponse, error)
	RegisterVolunteer(ctx context.Context, userID uuid.UUID, req *request.RegisterVolunteerRequest) (*response.VolunteerResponse, error)
	ListVolunteers(ctx context.Context, filter repository.VolunteerFilter, p *request.PaginatedRequest) ([]*response.VolunteerResponse, error)
	MyVolunteerProfile(ctx context.Context, userID uuid.UUID) (*response.VolunteerResponse, error)
}

type communityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommunityService(repo *repository.Repository, log *zap.Logger) CommunityService {
	return &communityService{
		repo: repo,
		log:  log.With(zap.String("service", "community")),
	}
}

func (s *communityService) CreateRequest(ctx context.Context, userID uuid.UUID, role entity.UserRole, req *request.CreateHelpRequestRequest) (*response.HelpRequestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create help request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	seq, err := s.repo.Counter.Next(ctx, repository.CounterHelpRequests)
	if err != nil {
		s.log.Error("Failed to draw help request sequence", zap.Error(err))
		return nil, fmt.Errorf("failed to create help request")
	}

	urgency := entity.Urgency(req.Urgency)
	if urgency == "" {
		urgency = entity.UrgencyMedium
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	now := time.Now()
	helpRequest := &entity.HelpRequest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RequestID:   utils.FormatPublicID(utils.HelpRequestIDPrefix, now, seq),
		RequesterID: userID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Urgency:     urgency,
		IsPublic:    isPublic,
		Status:      entity.HelpStatusPending,
		// The tracking log starts with the creation entry and only
		// ever grows
		Tracking: []entity.TrackingEntry{{
			Status:    entity.HelpStatusPending,
			Timestamp: now,
			Note:      "Request created",
			ActorRole: role,
		}},
	}

	if err := s.repo.HelpRequest.Create(ctx, helpRequest); err != nil {
		s.log.Error("Failed to create help request", zap.Error(err), zap.String("request_id", helpRequest.RequestID))
		return nil, fmt.Errorf("failed to create help request")
	}

	s.log.Info("Help request created",
		zap.String("request_id", helpRequest.RequestID),
		zap.String("requester_id", userID.String()))

	return response.HelpRequestToResponse(helpRequest), nil
}

func (s *communityService) ListRequests(ctx context.Context, userID uuid.UUID, mine bool, p *request.PaginatedRequest) ([]*response.HelpRequestResponse, error) {
	var requests []*entity.HelpRequest
	var err error

	if mine {
		requests, err = s.repo.HelpRequest.ListByUser(ctx, userID, p.Limit(), p.Offset())
	} else {
		requests, err = s.repo.HelpRequest.ListPublic(ctx, p.Limit(), p.Offset())
	}
	if err != nil {
		s.log.Error("Failed to list help requests", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list help requests")
	}

	return response.HelpRequestsToResponse(requests), nil
}

func (s *communityService) GetRequest(ctx context.Context, userID uuid.UUID, role entity.UserRole, requestID string) (*response.HelpRequestResponse, error) {
	helpRequest, err := s.find(ctx, requestID)
	if err != nil {
		return nil, err
	}

	// Private requests are visible only to their parties
	if !helpRequest.IsPublic && !isParty(helpRequest, userID) && role != entity.RoleAdmin {
		return nil, fmt.Errorf("not allowed to access this help request")
	}

	return response.HelpRequestToResponse(helpRequest), nil
}

func (s *communityService) UpdateStatus(ctx context.Context, userID uuid.UUID, role entity.UserRole, requestID string, req *request.UpdateHelpStatusRequest) (*response.HelpRequestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	helpRequest, err := s.find(ctx, requestID)
	if err != nil {
		return nil, err
	}

	next := entity.HelpStatus(req.Status)

	actorRole, err := s.actorRole(ctx, helpRequest, userID, role, next)
	if err != nil {
		return nil, err
	}

	if !entity.RoleCanSetHelpStatus(actorRole, next) {
		return nil, fmt.Errorf("role %s not allowed to set status %s", actorRole, next)
	}
	if !helpRequest.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("illegal status transition from %s to %s", helpRequest.Status, next)
	}

	// Accepting binds the volunteer to the request
	if next == entity.HelpStatusAccepted {
		helpRequest.VolunteerID = &userID
	}

	prev := helpRequest.Status
	helpRequest.Status = next
	helpRequest.Tracking = append(helpRequest.Tracking, entity.TrackingEntry{
		Status:    next,
		Timestamp: time.Now(),
		Note:      req.Note,
		ActorRole: actorRole,
	})

	if err := s.repo.HelpRequest.Update(ctx, helpRequest); err != nil {
		s.log.Error("Failed to update help request", zap.Error(err), zap.String("request_id", requestID))
		return nil, fmt.Errorf("failed to update help request")
	}

	if next == entity.HelpStatusCompleted {
		s.updateVolunteerStats(ctx, helpRequest, actorRole, req.Rating)
	}

	s.log.Info("Help request status updated",
		zap.String("request_id", requestID),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
		zap.String("actor", userID.String()))

	return response.HelpRequestToResponse(helpRequest), nil
}

func (s *communityService) RegisterVolunteer(ctx context.Context, userID uuid.UUID, req *request.RegisterVolunteerRequest) (*response.VolunteerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register volunteer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Volunteer.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check volunteer profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to check volunteer profile")
	}
	if existing != nil {
		return nil, fmt.Errorf("volunteer profile already registered")
	}

	now := time.Now()
	volunteer := &entity.Volunteer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userID,
		Skills:          req.Skills,
		Availability:    entity.Availability(req.Availability),
		ServiceRadiusKm: req.ServiceRadiusKm,
		Bio:             req.Bio,
	}

	if err := s.repo.Volunteer.Create(ctx, volunteer); err != nil {
		s.log.Error("Failed to create volunteer profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to register volunteer")
	}

	s.log.Info("Volunteer registered", zap.String("user_id", userID.String()))

	return response.VolunteerToResponse(volunteer), nil
}

func (s *communityService) ListVolunteers(ctx context.Context, filter repository.VolunteerFilter, p *request.PaginatedRequest) ([]*response.VolunteerResponse, error) {
	volunteers, err := s.repo.Volunteer.List(ctx, filter, p.Limit(), p.Offset())
	if err != nil {
		s.log.Error("Failed to list volunteers", zap.Error(err))
		return nil, fmt.Errorf("failed to list volunteers")
	}

	return response.VolunteersToResponse(volunteers), nil
}

func (s *communityService) MyVolunteerProfile(ctx context.Context, userID uuid.UUID) (*response.VolunteerResponse, error) {
	volunteer, err := s.repo.Volunteer.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load volunteer profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load volunteer profile")
	}
	if volunteer == nil {
		return nil, fmt.Errorf("volunteer profile not found")
	}

	return response.VolunteerToResponse(volunteer), nil
}

func (s *communityService) find(ctx context.Context, requestID string) (*entity.HelpRequest, error) {
	helpRequest, err := s.repo.HelpRequest.FindByRequestID(ctx, requestID)
	if err != nil {
		s.log.Error("Failed to load help request", zap.Error(err), zap.String("request_id", requestID))
		return nil, fmt.Errorf("failed to load help request")
	}
	if helpRequest == nil {
		return nil, fmt.Errorf("help request %s not found", requestID)
	}
	return helpRequest, nil
}

func isParty(r *entity.HelpRequest, userID uuid.UUID) bool {
	if r.RequesterID == userID {
		return true
	}
	return r.VolunteerID != nil && *r.VolunteerID == userID
}

// actorRole maps the caller to their role on this request. Accepting
// requires a volunteer profile; later volunteer-side moves require
// being the assigned volunteer.
func (s *communityService) actorRole(ctx context.Context, r *entity.HelpRequest, userID uuid.UUID, claimed entity.UserRole, next entity.HelpStatus) (entity.UserRole, error) {
	if claimed == entity.RoleAdmin {
		return entity.RoleAdmin, nil
	}

	if next == entity.HelpStatusAccepted {
		if r.RequesterID == userID {
			return "", fmt.Errorf("cannot volunteer for your own request")
		}
		profile, err := s.repo.Volunteer.FindByUserID(ctx, userID)
		if err != nil {
			s.log.Error("Failed to check volunteer profile", zap.Error(err), zap.String("user_id", userID.String()))
			return "", fmt.Errorf("failed to check volunteer profile")
		}
		if profile == nil {
			return "", fmt.Errorf("volunteer profile required to accept requests")
		}
		return entity.RoleVolunteer, nil
	}

	if r.VolunteerID != nil && *r.VolunteerID == userID {
		return entity.RoleVolunteer, nil
	}
	if r.RequesterID == userID {
		return entity.RoleCustomer, nil
	}

	return "", fmt.Errorf("not allowed to access this help request")
}

// updateVolunteerStats bumps completion count and, when the requester
// left a rating, folds it into the aggregate
func (s *communityService) updateVolunteerStats(ctx context.Context, r *entity.HelpRequest, actorRole entity.UserRole, rating int) {
	if r.VolunteerID == nil {
		return
	}

	volunteer, err := s.repo.Volunteer.FindByUserID(ctx, *r.VolunteerID)
	if err != nil || volunteer == nil {
		if err != nil {
			s.log.Error("Failed to load volunteer for stats", zap.Error(err), zap.String("request_id", r.RequestID))
		}
		return
	}

	volunteer.Stats.CompletedRequests++
	if rating > 0 && actorRole == entity.RoleCustomer {
		volunteer.Stats.RatingSum += rating
		volunteer.Stats.TotalRatings++
	}

	if err := s.repo.Volunteer.Update(ctx, volunteer); err != nil {
		s.log.Error("Failed to update volunteer stats", zap.Error(err), zap.String("request_id", r.RequestID))
	}
}
