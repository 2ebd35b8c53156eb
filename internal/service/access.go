package service

import "github.com/plumeworks/plume/internal/model"

// CanEdit reports whether the acting identity may mutate the post. Only the
// original author qualifies; the anonymous visitor never does. This is the
// single place the authorship comparison lives; mutating entry points call
// it instead of comparing IDs themselves.
func CanEdit(identity model.Identity, post *model.Post) bool {
	if post == nil || !identity.Authenticated() {
		return false
	}
	return identity.UserID == post.AuthorID
}
