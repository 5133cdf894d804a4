package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileUserStore persists users in a single JSON document of the form
// {"users": [...]}. An absent file reads as an empty collection.
type FileUserStore struct {
	path string
}

// NewFileUserStore returns a FileUserStore backed by path.
func NewFileUserStore(path string) *FileUserStore {
	return &FileUserStore{path: path}
}

type usersDocument struct {
	Users []User `json:"users"`
}

func (s *FileUserStore) load() (usersDocument, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return usersDocument{}, nil
		}
		return usersDocument{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc usersDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return usersDocument{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *FileUserStore) save(doc usersDocument) error {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, encoded, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// GetByEmail returns the user with the given email, or ErrUserNotFound.
// Lookup is a linear scan; acceptable at the scale a flat file serves.
func (s *FileUserStore) GetByEmail(_ context.Context, email string) (User, error) {
	doc, err := s.load()
	if err != nil {
		return User{}, err
	}
	for _, u := range doc.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

// GetByID returns the user with the given id, or ErrUserNotFound.
func (s *FileUserStore) GetByID(_ context.Context, id string) (User, error) {
	doc, err := s.load()
	if err != nil {
		return User{}, err
	}
	for _, u := range doc.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

// UpdatePasswordHash replaces the password hash of the user with the
// given id and persists the whole document. Returns ErrUserNotFound when
// no record matches.
func (s *FileUserStore) UpdatePasswordHash(_ context.Context, id, newHash string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			doc.Users[i].PasswordHash = newHash
			return s.save(doc)
		}
	}
	return ErrUserNotFound
}

// FileTicketStore persists reset tickets in a single JSON document
// mapping user id to ticket. An absent file reads as an empty mapping.
type FileTicketStore struct {
	path string
}

// NewFileTicketStore returns a FileTicketStore backed by path.
func NewFileTicketStore(path string) *FileTicketStore {
	return &FileTicketStore{path: path}
}

func (s *FileTicketStore) load() (map[string]ResetTicket, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]ResetTicket{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	tickets := map[string]ResetTicket{}
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return tickets, nil
}

func (s *FileTicketStore) save(tickets map[string]ResetTicket) error {
	encoded, err := json.MarshalIndent(tickets, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, encoded, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Put stores ticket under userID, replacing any prior ticket.
func (s *FileTicketStore) Put(_ context.Context, userID string, ticket ResetTicket) error {
	tickets, err := s.load()
	if err != nil {
		return err
	}
	tickets[userID] = ticket
	return s.save(tickets)
}

// Get returns the ticket stored for userID, or ErrTicketNotFound.
func (s *FileTicketStore) Get(_ context.Context, userID string) (ResetTicket, error) {
	tickets, err := s.load()
	if err != nil {
		return ResetTicket{}, err
	}
	ticket, ok := tickets[userID]
	if !ok {
		return ResetTicket{}, ErrTicketNotFound
	}
	return ticket, nil
}

// Delete removes the ticket stored for userID. Deleting an absent ticket
// is not an error.
func (s *FileTicketStore) Delete(_ context.Context, userID string) error {
	tickets, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := tickets[userID]; !ok {
		return nil
	}
	delete(tickets, userID)
	return s.save(tickets)
}
