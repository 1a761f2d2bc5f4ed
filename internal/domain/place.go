package domain

import "slices"

const (
	maxTitleLen       = 100
	minCapacity       = 1
	maxCapacity       = 64
	minDescriptionLen = 2
	maxDescriptionLen = 1024
)

// Place is a listing owned by a Host. HostID is set once at creation and has
// no setter. Amenities are kept as an order-preserving id list; review and
// booking back-references are resolved through the facade.
type Place struct {
	Base
	Title       string   `json:"title" gorm:"column:title"`
	Description string   `json:"description" gorm:"column:description"`
	Price       float64  `json:"price" gorm:"column:price"`
	Latitude    float64  `json:"latitude" gorm:"column:latitude"`
	Longitude   float64  `json:"longitude" gorm:"column:longitude"`
	Capacity    int      `json:"capacity" gorm:"column:capacity"`
	HostID      string   `json:"host_id" gorm:"column:host_id;index"`
	AmenityIDs  []string `json:"amenity_ids" gorm:"column:amenity_ids;serializer:json"`
}

func (Place) TableName() string { return "places" }

func NewPlace(title, description string, price, latitude, longitude float64, capacity int, hostID string) (*Place, error) {
	if hostID == "" {
		return nil, invalidf("host id must not be empty")
	}
	p := &Place{Base: newBase(), HostID: hostID, AmenityIDs: []string{}}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetLatitude(latitude); err != nil {
		return nil, err
	}
	if err := p.SetLongitude(longitude); err != nil {
		return nil, err
	}
	if err := p.SetCapacity(capacity); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Place) SetTitle(title string) error {
	if title == "" {
		return invalidf("title must not be empty")
	}
	if len(title) > maxTitleLen {
		return invalidf("title must not exceed %d characters", maxTitleLen)
	}
	p.Title = title
	p.touch()
	return nil
}

func (p *Place) SetDescription(description string) error {
	if len(description) < minDescriptionLen || len(description) > maxDescriptionLen {
		return invalidf("description length must be between %d and %d characters", minDescriptionLen, maxDescriptionLen)
	}
	p.Description = description
	p.touch()
	return nil
}

func (p *Place) SetPrice(price float64) error {
	if price < 0 {
		return invalidf("price must not be negative")
	}
	p.Price = price
	p.touch()
	return nil
}

func (p *Place) SetLatitude(latitude float64) error {
	if latitude < -90 || latitude > 90 {
		return invalidf("latitude must be between -90 and 90")
	}
	p.Latitude = latitude
	p.touch()
	return nil
}

func (p *Place) SetLongitude(longitude float64) error {
	if longitude < -180 || longitude > 180 {
		return invalidf("longitude must be between -180 and 180")
	}
	p.Longitude = longitude
	p.touch()
	return nil
}

func (p *Place) SetCapacity(capacity int) error {
	if capacity < minCapacity || capacity > maxCapacity {
		return invalidf("capacity must be between %d and %d", minCapacity, maxCapacity)
	}
	p.Capacity = capacity
	p.touch()
	return nil
}

func (p *Place) HasAmenity(amenityID string) bool {
	return slices.Contains(p.AmenityIDs, amenityID)
}

// AddAmenity appends the amenity id, preserving attachment order.
func (p *Place) AddAmenity(amenityID string) error {
	if p.HasAmenity(amenityID) {
		return invalidf("amenity %s is already attached", amenityID)
	}
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
	p.touch()
	return nil
}

func (p *Place) RemoveAmenity(amenityID string) bool {
	i := slices.Index(p.AmenityIDs, amenityID)
	if i < 0 {
		return false
	}
	p.AmenityIDs = slices.Delete(p.AmenityIDs, i, i+1)
	p.touch()
	return true
}
