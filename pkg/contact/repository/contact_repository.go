package repository

import "krishi/entities"

type ContactRepository interface {
	Create(m *entities.Contact) error
}
