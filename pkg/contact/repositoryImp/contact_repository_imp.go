package repositoryImp

import (
	"krishi/entities"
	"krishi/pkg/contact/repository"

	"gorm.io/gorm"
)

type contactRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ContactRepository { return &contactRepo{db} }

func (r *contactRepo) Create(m *entities.Contact) error { return r.db.Create(m).Error }
