package domain

const (
	minAmenityNameLen = 1
	maxAmenityNameLen = 32
)

// Amenity is an independent entity referenced, never owned, by places.
type Amenity struct {
	Base
	Name string `json:"name" gorm:"column:name"`
}

func (Amenity) TableName() string { return "amenities" }

func NewAmenity(name string) (*Amenity, error) {
	a := &Amenity{Base: newBase()}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Amenity) SetName(name string) error {
	if len(name) < minAmenityNameLen || len(name) > maxAmenityNameLen {
		return invalidf("amenity name length must be between %d and %d characters", minAmenityNameLen, maxAmenityNameLen)
	}
	a.Name = name
	a.touch()
	return nil
}
