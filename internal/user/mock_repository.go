package user

import "strconv"

// mockRepository is an in-memory Repository for tests.
type mockRepository struct {
	users  []*User
	nextID int
}

func newMockRepository() *mockRepository {
	return &mockRepository{nextID: 1}
}

func (m *mockRepository) createUser(user *User) error {
	user.ID = strconv.Itoa(m.nextID)
	m.nextID++
	stored := *user
	m.users = append(m.users, &stored)
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(id string) (*User, error) {
	for _, u := range m.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) updateSavingTarget(userID string, savingTarget float64) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.SavingTarget = savingTarget
			return nil
		}
	}
	return ErrUserNotFound
}
