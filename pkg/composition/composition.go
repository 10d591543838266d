package composition

import (
	"context"
	"errors"
	"fmt"

	"compositions/pkg/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound        = errors.New("composition not found")
	ErrInvalidID       = errors.New("invalid composition id")
	ErrInvalidOwnerID  = errors.New("invalid owner id")
	ErrOwnerUnresolved = errors.New("owner_unresolved")
)

// RequiredFields lists the create fields in the order they are checked.
var RequiredFields = []string{"username", "title", "music", "creation"}

// Record is a composition as stored. Its owner is only a reference and it
// cannot be serialized until the owner has been resolved.
type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	User          primitive.ObjectID `bson:"user"`
	Title         string             `bson:"title"`
	Music         string             `bson:"music"`
	Clef          string             `bson:"clef,omitempty"`
	TimeSignature string             `bson:"timeSignature,omitempty"`
	BaseNoteValue string             `bson:"baseNoteValue,omitempty"`
	Key           string             `bson:"key,omitempty"`
	Creation      string             `bson:"creation"`
}

// Composition is a Record joined with the user that owns it.
type Composition struct {
	Record
	Owner user.User
}

type View struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Title         string `json:"title"`
	Music         string `json:"music"`
	Clef          string `json:"clef,omitempty"`
	TimeSignature string `json:"timeSignature,omitempty"`
	BaseNoteValue string `json:"baseNoteValue,omitempty"`
	Key           string `json:"key,omitempty"`
	Creation      string `json:"creation"`
}

func (c *Composition) Serialize() View {
	return View{
		ID:            c.ID.Hex(),
		Username:      c.Owner.Username,
		Title:         c.Title,
		Music:         c.Music,
		Clef:          c.Clef,
		TimeSignature: c.TimeSignature,
		BaseNoteValue: c.BaseNoteValue,
		Key:           c.Key,
		Creation:      c.Creation,
	}
}

func SerializeAll(list []*Composition) []View {
	views := make([]View, 0, len(list))
	for _, c := range list {
		views = append(views, c.Serialize())
	}
	return views
}

// Draft is the body of a create request. Required fields are pointers so a
// missing key can be told apart from an empty value.
type Draft struct {
	Username      *string `json:"username"`
	Title         *string `json:"title"`
	Music         *string `json:"music"`
	Creation      *string `json:"creation"`
	Clef          string  `json:"clef"`
	TimeSignature string  `json:"timeSignature"`
	BaseNoteValue string  `json:"baseNoteValue"`
	Key           string  `json:"key"`
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing %s in request body", e.Field)
}

// Validate reports the first required field absent from the draft.
func (d *Draft) Validate() error {
	values := map[string]*string{
		"username": d.Username,
		"title":    d.Title,
		"music":    d.Music,
		"creation": d.Creation,
	}
	for _, field := range RequiredFields {
		if values[field] == nil {
			return &MissingFieldError{Field: field}
		}
	}
	return nil
}

func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	FindAll(ctx context.Context) ([]*Composition, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*Composition, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Composition, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
