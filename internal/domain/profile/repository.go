package profile

import "context"

// Repository exposes profile reads. Profiles are owned by the account system;
// this core never writes them.
type Repository interface {
	List(ctx context.Context) ([]Profile, error)
	GetByUserID(ctx context.Context, userID string) (Profile, bool, error)
}
