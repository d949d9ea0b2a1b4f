package meeting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/meeting/mock.go -package=mocks

type meetingRepository interface {
	CreateMeeting(ctx context.Context, m model.Meeting) (uuid.UUID, error)
	ListMeetings(ctx context.Context) ([]model.Meeting, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Meeting, error)
	AddAgendaItem(ctx context.Context, item model.AgendaItem) (uuid.UUID, error)
	SaveRSVP(ctx context.Context, rsvp model.RSVP) error
	CreateResolution(ctx context.Context, res model.Resolution) (uuid.UUID, error)
	ListResolutions(ctx context.Context, meetingID uuid.UUID) ([]model.Resolution, error)
	RecordVote(ctx context.Context, resolutionID uuid.UUID, ballot string) error
}

type userRepository interface {
	ListByRoles(ctx context.Context, roles []string) ([]model.User, error)
}

type notifier interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
}

// Service covers governance: meetings, agendas, attendance and
// resolutions. Creating a meeting notifies its audience.
type Service struct {
	repo     meetingRepository
	users    userRepository
	notifier notifier
}

func NewService(repo meetingRepository, users userRepository, notifier notifier) *Service {
	return &Service{repo: repo, users: users, notifier: notifier}
}

// Create persists a meeting and notifies the audience the meeting type
// addresses: the whole cooperative for a general assembly, the board or
// committee members otherwise. Fan-out is best-effort.
func (s *Service) Create(ctx context.Context, m model.Meeting) (uuid.UUID, error) {
	id, err := s.repo.CreateMeeting(ctx, m)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create meeting: %w", err)
	}

	audience, err := s.users.ListByRoles(ctx, audienceRoles(m.Type))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("meeting_id", id.String()).Msg("failed to resolve meeting audience")
		return id, nil
	}

	for _, u := range audience {
		if u.ID == m.CreatedBy {
			continue
		}

		_, err := s.notifier.Create(ctx, model.Notification{
			UserID:  u.ID,
			Type:    model.NotificationTypeMeeting,
			Title:   m.Title,
			Content: fmt.Sprintf("%s at %s, %s", m.Date.Format("2006-01-02"), m.StartTime, m.Location),
			Link:    "/meetings/" + id.String(),
		})
		if err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", u.ID.String()).Msg("failed to notify meeting attendee")
		}
	}

	return id, nil
}

// List returns all meetings, upcoming first.
func (s *Service) List(ctx context.Context) ([]model.Meeting, error) {
	meetings, err := s.repo.ListMeetings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}

	return meetings, nil
}

// Get returns one meeting with its agenda.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.Meeting, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Meeting{}, fmt.Errorf("get meeting: %w", err)
	}

	return m, nil
}

// AddAgendaItem appends an item to a meeting's agenda.
func (s *Service) AddAgendaItem(ctx context.Context, item model.AgendaItem) (uuid.UUID, error) {
	id, err := s.repo.AddAgendaItem(ctx, item)
	if err != nil {
		return uuid.Nil, fmt.Errorf("add agenda item: %w", err)
	}

	return id, nil
}

// RSVP records or replaces a member's attendance answer.
func (s *Service) RSVP(ctx context.Context, rsvp model.RSVP) error {
	if err := s.repo.SaveRSVP(ctx, rsvp); err != nil {
		return fmt.Errorf("save rsvp: %w", err)
	}

	return nil
}

// CreateResolution files a draft resolution for a meeting.
func (s *Service) CreateResolution(ctx context.Context, res model.Resolution) (uuid.UUID, error) {
	id, err := s.repo.CreateResolution(ctx, res)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create resolution: %w", err)
	}

	return id, nil
}

// ListResolutions returns a meeting's resolutions.
func (s *Service) ListResolutions(ctx context.Context, meetingID uuid.UUID) ([]model.Resolution, error) {
	resolutions, err := s.repo.ListResolutions(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list resolutions: %w", err)
	}

	return resolutions, nil
}

// Vote adds one ballot (for, against, abstain) to a resolution.
func (s *Service) Vote(ctx context.Context, resolutionID uuid.UUID, ballot string) error {
	if err := s.repo.RecordVote(ctx, resolutionID, ballot); err != nil {
		return fmt.Errorf("record vote: %w", err)
	}

	return nil
}

func audienceRoles(meetingType string) []string {
	switch meetingType {
	case model.MeetingTypeBoard:
		return []string{model.RoleBoard, model.RoleAdmin}
	case model.MeetingTypeCommittee:
		return []string{model.RoleCommittee, model.RoleAdmin}
	default:
		// General assemblies address the whole cooperative.
		return nil
	}
}
