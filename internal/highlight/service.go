package highlight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"truepedia.io/truepedia/ent"
	enthighlight "truepedia.io/truepedia/ent/highlight"
)

// Validation errors surfaced to handlers.
var (
	// ErrEmptyFragment is returned when a save carries no usable text.
	ErrEmptyFragment = errors.New("highlight fragment is empty")

	// ErrFragmentTooLong bounds stored fragments to the schema limit.
	ErrFragmentTooLong = errors.New("highlight fragment exceeds maximum length")
)

// MaxFragmentLen mirrors the schema's fragment MaxLen.
const MaxFragmentLen = 2048

// Service persists highlights and reads them back in storage order.
type Service struct {
	client *ent.Client
}

// NewService creates a highlight service backed by the Ent client.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Save stores a highlight for an article. Saving a fragment that already
// exists for the same article and section returns the existing record with
// created=false, so repeated saves from collaborating readers are idempotent.
func (s *Service) Save(ctx context.Context, title, lang, fragment, section string) (*ent.Highlight, bool, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, false, ErrEmptyFragment
	}
	if len(fragment) > MaxFragmentLen {
		return nil, false, ErrFragmentTooLong
	}

	key := ArticleKey(title, lang)

	existing, err := s.client.Highlight.Query().
		Where(
			enthighlight.ArticleKeyEQ(key),
			enthighlight.SectionEQ(section),
			enthighlight.FragmentEQ(fragment),
		).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("query existing highlight: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, false, fmt.Errorf("generate highlight id: %w", err)
	}

	created, err := s.client.Highlight.Create().
		SetID(id.String()).
		SetArticleKey(key).
		SetTitle(normalizeTitle(title)).
		SetLanguage(strings.TrimSpace(lang)).
		SetFragment(fragment).
		SetSection(section).
		Save(ctx)
	if err != nil {
		// A concurrent save of the same fragment can win the race; the
		// unique index makes that a lookup, not a failure.
		if ent.IsConstraintError(err) {
			row, qerr := s.client.Highlight.Query().
				Where(
					enthighlight.ArticleKeyEQ(key),
					enthighlight.SectionEQ(section),
					enthighlight.FragmentEQ(fragment),
				).
				Only(ctx)
			return row, false, qerr
		}
		return nil, false, fmt.Errorf("create highlight: %w", err)
	}
	return created, true, nil
}

// List returns all highlights for an article in storage order.
func (s *Service) List(ctx context.Context, title, lang string) ([]*ent.Highlight, error) {
	rows, err := s.client.Highlight.Query().
		Where(enthighlight.ArticleKeyEQ(ArticleKey(title, lang))).
		Order(ent.Asc(enthighlight.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}
	return rows, nil
}

// Fragments returns just the fragment strings for an article, in storage
// order, ready to hand to Apply.
func (s *Service) Fragments(ctx context.Context, title, lang string) ([]string, error) {
	rows, err := s.List(ctx, title, lang)
	if err != nil {
		return nil, err
	}
	fragments := make([]string, 0, len(rows))
	for _, row := range rows {
		fragments = append(fragments, row.Fragment)
	}
	return fragments, nil
}

// Delete removes a highlight by id. Returns an ent not-found error when the
// id does not exist; callers map that to a 404.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.client.Highlight.DeleteOneID(id).Exec(ctx)
}
