package service

import (
	"context"
	"errors"

	"lostandfound/internal/model"

	"github.com/google/uuid"
)

// In-memory fakes for the repository and primitive interfaces, so service
// semantics can be tested without a database.

type fakeUserRepo struct {
	users     []*model.User
	createErr error
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = uuid.New()
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByPhoneNumber(_ context.Context, phoneNumber string) (*model.User, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phoneNumber {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return errors.New("user not found for update")
}

func (r *fakeUserRepo) UpdateProfileImage(_ context.Context, id uuid.UUID, profileImage string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.ProfileImage = profileImage
			return nil
		}
	}
	return errors.New("user not found for profile image update")
}

type fakeItemRepo struct {
	items []model.Item
}

func (r *fakeItemRepo) Create(_ context.Context, item *model.Item) error {
	item.ID = uuid.New()
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeItemRepo) FindAll(_ context.Context) ([]model.Item, error) {
	out := []model.Item{}
	out = append(out, r.items...)
	return out, nil
}

func (r *fakeItemRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]model.Item, error) {
	out := []model.Item{}
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Compare(password, hash string) bool   { return hash == "hashed:"+password }

type fakeIssuer struct {
	err error
}

func (i fakeIssuer) GenerateToken(userID uuid.UUID) (string, error) {
	if i.err != nil {
		return "", i.err
	}
	return "token-for-" + userID.String(), nil
}

type fakeSMS struct {
	sent []string // phone numbers
	last string   // last message body
	err  error
}

func (s *fakeSMS) Send(_ context.Context, phoneNumber, message string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, phoneNumber)
	s.last = message
	return nil
}
