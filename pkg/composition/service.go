package composition

import (
	"context"
	"fmt"
	"time"

	"compositions/pkg/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// rollbackTimeout bounds the cleanup delete after a failed create. The
// cleanup outlives the request context.
const rollbackTimeout = 5 * time.Second

type ServiceComposition interface {
	GetAll(ctx context.Context) ([]*Composition, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*Composition, error)
	Create(ctx context.Context, draft *Draft) (*Composition, error)
	Delete(ctx context.Context, id string) error
}

type CompositionService struct {
	Repo  Repository
	Users user.Repository
}

func NewService(repo Repository, users user.Repository) *CompositionService {
	return &CompositionService{Repo: repo, Users: users}
}

func (s *CompositionService) GetAll(ctx context.Context) ([]*Composition, error) {
	return s.Repo.FindAll(ctx)
}

func (s *CompositionService) GetByOwner(ctx context.Context, ownerID string) ([]*Composition, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrInvalidOwnerID
	}
	return s.Repo.FindByOwner(ctx, oid)
}

// Create stores a composition owned by draft.Username and returns it with
// the owner resolved. The draft is validated before the store is touched.
func (s *CompositionService) Create(ctx context.Context, draft *Draft) (*Composition, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	owner, err := s.Users.FindByUsername(ctx, *draft.Username)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		User:          owner.ID,
		Title:         *draft.Title,
		Music:         *draft.Music,
		Clef:          draft.Clef,
		TimeSignature: draft.TimeSignature,
		BaseNoteValue: draft.BaseNoteValue,
		Key:           draft.Key,
		Creation:      *draft.Creation,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	created, err := s.Repo.FindByID(ctx, rec.ID)
	if err != nil {
		// a failed create must not leave a record behind
		if delErr := s.rollback(ctx, rec.ID); delErr != nil {
			return nil, fmt.Errorf("%w (rollback failed: %v)", err, delErr)
		}
		return nil, err
	}

	return created, nil
}

func (s *CompositionService) rollback(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	_, err := s.Repo.Delete(ctx, id)
	return err
}

// Delete removes the composition with the given id. Deleting an id that
// matches nothing is not an error.
func (s *CompositionService) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	_, err = s.Repo.Delete(ctx, oid)
	return err
}
