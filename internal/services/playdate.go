package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/logger"
	"github.com/sbilibin2017/pawpals-api/internal/models"
)

//go:generate mockgen -source=playdate.go -destination=playdate_mock.go -package=services

// PlaydateReader defines read-only operations for playdates.
type PlaydateReader interface {
	GetByID(ctx context.Context, playdateID uuid.UUID) (*models.PlaydateDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PlaydateDB, error)
	ListByDogID(ctx context.Context, dogID uuid.UUID, status string, now time.Time) ([]models.PlaydateDB, error)
}

// PlaydateWriter defines write operations for playdates.
// UpdateStatus and Update return nil, nil when the stored status no longer matches.
type PlaydateWriter interface {
	Save(ctx context.Context, playdate *models.PlaydateDB) (*models.PlaydateDB, error)
	UpdateStatus(ctx context.Context, playdateID uuid.UUID, from, to string) (*models.PlaydateDB, error)
	Update(ctx context.Context, playdate *models.PlaydateDB) (*models.PlaydateDB, error)
	Delete(ctx context.Context, playdateID uuid.UUID) error
}

// PlaydateService runs the playdate workflow.
type PlaydateService struct {
	dogs        DogReader
	reader      PlaydateReader
	writer      PlaydateWriter
	kafkaWriter KafkaWriter
	afterCommit CommitHook
	now         func() time.Time
}

// NewPlaydateService creates a new PlaydateService. kafkaWriter may be nil.
func NewPlaydateService(dogs DogReader, reader PlaydateReader, writer PlaydateWriter, kafkaWriter KafkaWriter) *PlaydateService {
	return &PlaydateService{
		dogs:        dogs,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		afterCommit: runNow,
		now:         time.Now,
	}
}

// WithAfterCommit makes events wait for the surrounding transaction to commit.
func (s *PlaydateService) WithAfterCommit(hook CommitHook) *PlaydateService {
	s.afterCommit = hook
	return s
}

// participants holds the two dogs of a playdate.
type participants struct {
	dog1, dog2 *models.DogDB
}

func (p participants) isOwner(userID uuid.UUID) bool {
	return p.dog1.UserID == userID || p.dog2.UserID == userID
}

func (p participants) ownerOf(dogID uuid.UUID) uuid.UUID {
	if p.dog1.DogID == dogID {
		return p.dog1.UserID
	}
	return p.dog2.UserID
}

// Create requests a playdate on behalf of the requester dog. The new playdate is
// always pending.
func (s *PlaydateService) Create(ctx context.Context, actingUserID uuid.UUID, playdate *models.PlaydateDB) (*models.PlaydateDB, error) {
	log := logger.FromContext(ctx)

	if playdate.Dog1ID == playdate.Dog2ID {
		return nil, fmt.Errorf("%w: a dog cannot have a playdate with itself", ErrValidation)
	}

	dog1, err := s.dogs.GetByID(ctx, playdate.Dog1ID)
	if err != nil {
		log.Errorw("failed to get dog", "dog_id", playdate.Dog1ID, "error", err)
		return nil, err
	}
	dog2, err := s.dogs.GetByID(ctx, playdate.Dog2ID)
	if err != nil {
		log.Errorw("failed to get dog", "dog_id", playdate.Dog2ID, "error", err)
		return nil, err
	}
	requester, err := s.requesterDog(ctx, playdate.RequesterDogID, dog1, dog2)
	if err != nil {
		return nil, err
	}
	if dog1 == nil || dog2 == nil || requester == nil {
		return nil, fmt.Errorf("%w: one or more dogs not found", ErrNotFound)
	}

	if requester.UserID != actingUserID {
		return nil, fmt.Errorf("%w: requester dog does not belong to the authenticated user", ErrForbidden)
	}
	if !playdate.HasDog(playdate.RequesterDogID) {
		return nil, fmt.Errorf("%w: requester dog must be one of the participants", ErrValidation)
	}

	playdate.Status = models.PlaydateStatusPending
	saved, err := s.writer.Save(ctx, playdate)
	if err != nil {
		log.Errorw("failed to save playdate", "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.PlaydateEventCreated, saved, actingUserID, "")
	return saved, nil
}

// requesterDog reuses an already loaded participant when the requester is one of them.
func (s *PlaydateService) requesterDog(ctx context.Context, dogID uuid.UUID, loaded ...*models.DogDB) (*models.DogDB, error) {
	for _, dog := range loaded {
		if dog != nil && dog.DogID == dogID {
			return dog, nil
		}
	}
	dog, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get dog", "dog_id", dogID, "error", err)
		return nil, err
	}
	return dog, nil
}

// ListForUser returns every playdate involving one of the user's dogs, newest first.
func (s *PlaydateService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.PlaydateDB, error) {
	playdates, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list playdates", "user_id", userID, "error", err)
		return nil, err
	}
	return playdates, nil
}

// ListForDog returns the playdates of a dog owned by requesterID. statusFilter is empty,
// a stored status, or "upcoming".
func (s *PlaydateService) ListForDog(ctx context.Context, dogID, requesterID uuid.UUID, statusFilter string) ([]models.PlaydateDB, error) {
	if statusFilter != "" && statusFilter != models.PlaydateStatusUpcoming && !models.IsPlaydateStatus(statusFilter) {
		return nil, fmt.Errorf("%w: unknown status filter %q", ErrValidation, statusFilter)
	}

	dog, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get dog", "dog_id", dogID, "error", err)
		return nil, err
	}
	if dog == nil {
		return nil, fmt.Errorf("%w: dog not found", ErrNotFound)
	}
	if dog.UserID != requesterID {
		return nil, fmt.Errorf("%w: unauthorized to view this dog's playdates", ErrForbidden)
	}

	playdates, err := s.reader.ListByDogID(ctx, dogID, statusFilter, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list playdates", "dog_id", dogID, "error", err)
		return nil, err
	}
	return playdates, nil
}

// Get returns the playdate if actingUserID owns one of its dogs.
func (s *PlaydateService) Get(ctx context.Context, playdateID, actingUserID uuid.UUID) (*models.PlaydateDB, error) {
	playdate, _, err := s.loadForParticipant(ctx, playdateID, actingUserID)
	return playdate, err
}

// UpdateStatus moves the playdate to newStatus:
//
//	pending  -> accepted, declined  (owner of the non-requester dog only)
//	pending  -> cancelled           (either owner)
//	accepted -> cancelled, completed (either owner)
//
// declined, cancelled and completed are terminal.
func (s *PlaydateService) UpdateStatus(ctx context.Context, playdateID, actingUserID uuid.UUID, newStatus string) (*models.PlaydateDB, error) {
	if !models.IsPlaydateStatus(newStatus) {
		return nil, fmt.Errorf("%w: invalid or missing status", ErrValidation)
	}

	playdate, dogs, err := s.loadForParticipant(ctx, playdateID, actingUserID)
	if err != nil {
		return nil, err
	}

	current := playdate.Status
	if models.IsTerminalPlaydateStatus(current) {
		return nil, fmt.Errorf("%w: playdate is already %s and cannot be changed", ErrInvalidTransition, current)
	}
	if !models.CanTransitionPlaydate(current, newStatus) {
		return nil, fmt.Errorf("%w: cannot change status from %s to %s", ErrInvalidTransition, current, newStatus)
	}
	if models.RecipientOnlyTransition(current, newStatus) && dogs.ownerOf(playdate.RequesterDogID) == actingUserID {
		return nil, fmt.Errorf("%w: requester cannot accept or decline their own request", ErrForbidden)
	}

	updated, err := s.writer.UpdateStatus(ctx, playdateID, current, newStatus)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update playdate status", "playdate_id", playdateID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: playdate status changed, reload and retry", ErrConcurrentUpdate)
	}

	s.publishEvent(ctx, models.PlaydateEventStatusChanged, updated, actingUserID, current)
	return updated, nil
}

// Update reschedules or relocates a pending or accepted playdate. The status is not
// changed here.
func (s *PlaydateService) Update(ctx context.Context, playdateID, actingUserID uuid.UUID, patch models.PlaydatePatch) (*models.PlaydateDB, error) {
	playdate, _, err := s.loadForParticipant(ctx, playdateID, actingUserID)
	if err != nil {
		return nil, err
	}
	if !models.IsEditablePlaydateStatus(playdate.Status) {
		return nil, fmt.Errorf("%w: playdate is already %s and cannot be changed", ErrInvalidTransition, playdate.Status)
	}

	patch.Apply(playdate)

	updated, err := s.writer.Update(ctx, playdate)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update playdate", "playdate_id", playdateID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: playdate status changed, reload and retry", ErrConcurrentUpdate)
	}

	s.publishEvent(ctx, models.PlaydateEventUpdated, updated, actingUserID, "")
	return updated, nil
}

// Delete removes a pending playdate. Only the owner of the requester dog may do it.
func (s *PlaydateService) Delete(ctx context.Context, playdateID, actingUserID uuid.UUID) error {
	playdate, dogs, err := s.load(ctx, playdateID)
	if err != nil {
		return err
	}
	if dogs.ownerOf(playdate.RequesterDogID) != actingUserID || playdate.Status != models.PlaydateStatusPending {
		return fmt.Errorf("%w: only the requester can delete a pending playdate", ErrForbidden)
	}

	if err := s.writer.Delete(ctx, playdateID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: playdate not found", ErrNotFound)
		}
		logger.FromContext(ctx).Errorw("failed to delete playdate", "playdate_id", playdateID, "error", err)
		return err
	}

	s.publishEvent(ctx, models.PlaydateEventDeleted, playdate, actingUserID, "")
	return nil
}

func (s *PlaydateService) loadForParticipant(ctx context.Context, playdateID, actingUserID uuid.UUID) (*models.PlaydateDB, participants, error) {
	playdate, dogs, err := s.load(ctx, playdateID)
	if err != nil {
		return nil, participants{}, err
	}
	if !dogs.isOwner(actingUserID) {
		return nil, participants{}, fmt.Errorf("%w: not a participant of this playdate", ErrForbidden)
	}
	return playdate, dogs, nil
}

func (s *PlaydateService) load(ctx context.Context, playdateID uuid.UUID) (*models.PlaydateDB, participants, error) {
	log := logger.FromContext(ctx)

	playdate, err := s.reader.GetByID(ctx, playdateID)
	if err != nil {
		log.Errorw("failed to get playdate", "playdate_id", playdateID, "error", err)
		return nil, participants{}, err
	}
	if playdate == nil {
		return nil, participants{}, fmt.Errorf("%w: playdate not found", ErrNotFound)
	}

	dog1, err := s.dogs.GetByID(ctx, playdate.Dog1ID)
	if err != nil {
		log.Errorw("failed to get dog", "dog_id", playdate.Dog1ID, "error", err)
		return nil, participants{}, err
	}
	dog2, err := s.dogs.GetByID(ctx, playdate.Dog2ID)
	if err != nil {
		log.Errorw("failed to get dog", "dog_id", playdate.Dog2ID, "error", err)
		return nil, participants{}, err
	}
	// Dogs cascade to their playdates, so a missing participant means a concurrent delete.
	if dog1 == nil || dog2 == nil {
		return nil, participants{}, fmt.Errorf("%w: playdate not found", ErrNotFound)
	}

	return playdate, participants{dog1: dog1, dog2: dog2}, nil
}

func (s *PlaydateService) publishEvent(ctx context.Context, eventType string, playdate *models.PlaydateDB, actorID uuid.UUID, previousStatus string) {
	event := models.PlaydateEvent{
		EventID:        uuid.NewString(),
		Type:           eventType,
		PlaydateID:     playdate.PlaydateID,
		Dog1ID:         playdate.Dog1ID,
		Dog2ID:         playdate.Dog2ID,
		ActorUserID:    actorID,
		Status:         playdate.Status,
		PreviousStatus: previousStatus,
		PlaydateTime:   playdate.PlaydateTime,
		Timestamp:      s.now().Unix(),
	}
	s.afterCommit(ctx, func(ctx context.Context) {
		publish(ctx, s.kafkaWriter, event.PlaydateID.String(), event)
	})
}
