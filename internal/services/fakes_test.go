package services

import (
	"github.com/google/uuid"
	"github.com/tbardet/contacts-api/internal/models"
	"gorm.io/gorm"
)

// In-memory repository fakes. Lookups mirror the GORM implementations:
// a miss returns gorm.ErrRecordNotFound.

type fakeUsers struct {
	users []*models.User
}

func (f *fakeUsers) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) FindByCredentials(username, password string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) Create(user *models.User) error {
	f.users = append(f.users, user)
	return nil
}

type fakeContacts struct {
	contacts []*models.Contact
}

func (f *fakeContacts) List() ([]models.Contact, error) {
	out := make([]models.Contact, 0, len(f.contacts))
	for _, c := range f.contacts {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeContacts) FindByID(id uuid.UUID) (*models.Contact, error) {
	for _, c := range f.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContacts) FindByTriple(firstname, lastname, mobilePhone string) (*models.Contact, error) {
	for _, c := range f.contacts {
		if c.Firstname == firstname && c.Lastname == lastname && c.MobilePhoneNumber == mobilePhone {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContacts) Create(contact *models.Contact) error {
	f.contacts = append(f.contacts, contact)
	return nil
}

func (f *fakeContacts) Save(contact *models.Contact) error {
	return nil
}

func (f *fakeContacts) Delete(contact *models.Contact) error {
	for i, c := range f.contacts {
		if c.ID == contact.ID {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeSkills struct {
	skills []*models.Skill
}

func (f *fakeSkills) List() ([]models.Skill, error) {
	out := make([]models.Skill, 0, len(f.skills))
	for _, s := range f.skills {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSkills) FindByID(id uuid.UUID) (*models.Skill, error) {
	for _, s := range f.skills {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSkills) FindByNameLevel(name, level string) (*models.Skill, error) {
	for _, s := range f.skills {
		if s.Name == name && s.Level == level {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSkills) Create(skill *models.Skill) error {
	f.skills = append(f.skills, skill)
	return nil
}

func (f *fakeSkills) Save(skill *models.Skill) error {
	return nil
}

func (f *fakeSkills) Delete(skill *models.Skill) error {
	for i, s := range f.skills {
		if s.ID == skill.ID {
			f.skills = append(f.skills[:i], f.skills[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeLinks struct {
	links    []models.ContactSkill
	contacts *fakeContacts
}

func (f *fakeLinks) Find(contactID, skillID uuid.UUID) (*models.ContactSkill, error) {
	for i := range f.links {
		if f.links[i].ContactID == contactID && f.links[i].SkillID == skillID {
			return &f.links[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLinks) LinkedOwnerIDs(skillID uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool)
	var owners []uuid.UUID
	for _, l := range f.links {
		if l.SkillID != skillID {
			continue
		}
		contact, err := f.contacts.FindByID(l.ContactID)
		if err != nil {
			continue
		}
		if !seen[contact.UserID] {
			seen[contact.UserID] = true
			owners = append(owners, contact.UserID)
		}
	}
	return owners, nil
}

func (f *fakeLinks) Create(link *models.ContactSkill) error {
	// The real store rejects a duplicate composite key.
	if _, err := f.Find(link.ContactID, link.SkillID); err == nil {
		return gorm.ErrDuplicatedKey
	}
	f.links = append(f.links, *link)
	return nil
}

func (f *fakeLinks) Delete(link *models.ContactSkill) error {
	for i := range f.links {
		if f.links[i].ContactID == link.ContactID && f.links[i].SkillID == link.SkillID {
			f.links = append(f.links[:i], f.links[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
