package models

import (
	"encoding/json"
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	u.ID = r.string("id")
	u.Email = r.string("email")
	u.Role = r.string("role")
	u.Phone = r.string("phone")
	u.AvatarURL = r.string("avatar_url", "avatarUrl")
	u.Locale = r.string("locale")
	if u.Locale == "" {
		u.Locale = "pt-BR"
	}
	u.CreatedAt = r.time("created_at", "createdAt", "inserted_at", "insertedAt")
	u.UpdatedAt = r.time("updated_at", "updatedAt")

	u.FirstName = r.string("first_name", "firstName")
	u.LastName = r.string("last_name", "lastName")
	u.FullName = r.string("full_name", "fullName", "name")
	if u.FullName == "" {
		u.FullName = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	if u.FirstName == "" && u.FullName != "" {
		parts := strings.Fields(u.FullName)
		u.FirstName = parts[0]
		u.LastName = strings.Join(parts[1:], " ")
	}
	return nil
}

type Student struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	TrainerID        string    `json:"trainerId"`
	Status           string    `json:"status"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	EmergencyPhone   string    `json:"emergencyPhone,omitempty"`
	MedicalNotes     string    `json:"medicalNotes,omitempty"`
	Goals            string    `json:"goals,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	User             *User     `json:"user,omitempty"`
}

func (s *Student) UnmarshalJSON(data []byte) error {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	s.ID = r.string("id")
	s.UserID = r.string("user_id", "userId")
	s.TrainerID = r.string("trainer_id", "trainerId")
	s.Status = r.string("status")
	if s.Status == "" {
		s.Status = "active"
	}
	s.EmergencyContact = r.string("emergency_contact_name", "emergencyContact")
	s.EmergencyPhone = r.string("emergency_contact_phone", "emergencyPhone")
	s.MedicalNotes = r.string("medical_conditions", "medicalNotes")
	s.Goals = r.string("goals_description", "goals")
	s.CreatedAt = r.time("inserted_at", "insertedAt", "created_at", "createdAt")
	s.UpdatedAt = r.time("updated_at", "updatedAt")

	var user User
	if r.object(&user, "user") {
		s.User = &user
	}
	return nil
}
