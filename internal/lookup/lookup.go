package lookup

import (
	"context"
	"errors"

	"anagram/internal/domain"
)

// Func adapts an ordinary function to domain.Lookuper.
type Func func(ctx context.Context, word string) (domain.LookupResult, error)

var _ domain.Lookuper = Func(nil)

func (f Func) Lookup(ctx context.Context, word string) (domain.LookupResult, error) {
	return f(ctx, word)
}

// Stub answers every lookup with MembershipUnknown.
type Stub struct{}

var _ domain.Lookuper = Stub{}

func (Stub) Lookup(ctx context.Context, word string) (domain.LookupResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.LookupResult{}, err
	}
	return domain.LookupResult{Word: word, Membership: domain.MembershipUnknown}, nil
}

// Local resolves words against a dictionary in the same process.
type Local struct {
	dict domain.Dictionary
}

var _ domain.Lookuper = (*Local)(nil)

func NewLocal(dict domain.Dictionary) (*Local, error) {
	if dict == nil {
		return nil, errors.New("lookup: dictionary is required")
	}
	return &Local{dict: dict}, nil
}

func (l *Local) Lookup(ctx context.Context, word string) (domain.LookupResult, error) {
	ok, err := l.dict.Contains(ctx, word)
	if err != nil {
		return domain.LookupResult{}, err
	}
	return domain.LookupResult{Word: word, Membership: domain.MembershipOf(ok)}, nil
}
