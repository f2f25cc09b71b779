// Package follow maintains the follow graph: the mutually-inverse
// users_followed/followers arrays, plus username search for finding people
// to follow.
package follow

import "go.mongodb.org/mongo-driver/bson/primitive"

// FollowResponse is returned by both follow and unfollow: a confirmation
// plus the caller's complete followed-id list after the change.
type FollowResponse struct {
	Message       string               `json:"message" example:"Followed"`
	UsersFollowed []primitive.ObjectID `json:"users_followed"`
}
