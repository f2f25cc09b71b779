package follow

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/models"
	"github.com/user/cinelog-go/store"
)

// UserStore is the slice of the user repository this service needs.
type UserStore interface {
	FindByIDOrUsername(ctx context.Context, identifier string) (*models.User, error)
	SearchByUsername(ctx context.Context, query string, limit int64) ([]models.UserSummary, error)
	AddFollowing(ctx context.Context, currentUserID string, targetID primitive.ObjectID) error
	RemoveFollowing(ctx context.Context, currentUserID string, targetID primitive.ObjectID) error
	FollowedIDs(ctx context.Context, userID string) ([]primitive.ObjectID, error)
}

// Service implements follow, unfollow and user search.
type Service struct {
	users UserStore
}

// NewService creates a follow Service.
func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// SearchUsers finds users whose username contains the query,
// case-insensitively, capped at limit results. An empty or whitespace-only
// query short-circuits to an empty result without touching the store.
func (s *Service) SearchUsers(ctx context.Context, query string, limit int64) ([]models.UserSummary, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []models.UserSummary{}, nil
	}

	results, err := s.users.SearchByUsername(ctx, trimmed, limit)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to search users", err)
	}
	return results, nil
}

// FollowUser adds current -> target to both sides of the relation. The
// target may be given by id or username. Following yourself is forbidden;
// following someone you already follow is a no-op (each side is checked
// independently, so a half-written relation from an earlier crash heals
// here). Returns the caller's followed list after the change.
func (s *Service) FollowUser(ctx context.Context, currentUserID, target string) (*FollowResponse, error) {
	targetUser, err := s.users.FindByIDOrUsername(ctx, target)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to resolve target user", err)
	}
	if targetUser == nil {
		return nil, apperror.NewNotFoundError("User not found", nil)
	}

	if currentUserID == targetUser.ID.Hex() {
		return nil, apperror.NewBadRequestError("You can't follow yourself", nil)
	}

	if err := s.users.AddFollowing(ctx, currentUserID, targetUser.ID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to follow user", err)
	}

	followed, err := s.users.FollowedIDs(ctx, currentUserID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to load followed users", err)
	}

	return &FollowResponse{Message: "Followed", UsersFollowed: followed}, nil
}

// UnfollowUser is the symmetric removal. It is idempotent: unfollowing
// someone you don't follow succeeds and changes nothing.
func (s *Service) UnfollowUser(ctx context.Context, currentUserID, target string) (*FollowResponse, error) {
	targetUser, err := s.users.FindByIDOrUsername(ctx, target)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to resolve target user", err)
	}
	if targetUser == nil {
		return nil, apperror.NewNotFoundError("User not found", nil)
	}

	if err := s.users.RemoveFollowing(ctx, currentUserID, targetUser.ID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to unfollow user", err)
	}

	followed, err := s.users.FollowedIDs(ctx, currentUserID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to load followed users", err)
	}

	return &FollowResponse{Message: "Unfollowed", UsersFollowed: followed}, nil
}
