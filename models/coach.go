package models

import "time"

// Coach represents a coach profile with their bookable service catalogue embedded.
type Coach struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Teams     []string  `bson:"teams,omitempty" json:"teams,omitempty"` // Team assignments, opaque to the engine
	Services  []Service `bson:"services" json:"services"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ServiceByName looks up a catalogue entry. Returns nil if the coach does not offer it.
func (c *Coach) ServiceByName(name string) *Service {
	for i := range c.Services {
		if c.Services[i].Name == name {
			return &c.Services[i]
		}
	}
	return nil
}
