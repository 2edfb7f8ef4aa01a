package domain

import "time"

type Kind string

const (
	KindVibration Kind = "vibration"
	KindVehicle   Kind = "vehicle"
	KindSmoking   Kind = "smoking"
	KindClosing   Kind = "closing"
	KindCustom    Kind = "custom"
)

func (k Kind) Valid() bool {
	switch k {
	case KindVibration, KindVehicle, KindSmoking, KindClosing, KindCustom:
		return true
	}
	return false
}

type ClosingType string

const (
	ClosingFloor ClosingType = "floor"
	ClosingStore ClosingType = "store"
)

func (c ClosingType) Valid() bool {
	return c == ClosingFloor || c == ClosingStore
}

type Day string

const (
	Sunday    Day = "SUN"
	Monday    Day = "MON"
	Tuesday   Day = "TUE"
	Wednesday Day = "WED"
	Thursday  Day = "THU"
	Friday    Day = "FRI"
	Saturday  Day = "SAT"
)

// Week is indexed by time.Weekday.
var Week = [7]Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func DayOf(w time.Weekday) Day {
	return Week[w]
}

func (d Day) Weekday() (time.Weekday, bool) {
	for i, day := range Week {
		if day == d {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

type Schedule struct {
	ID              string      `json:"id"`
	Kind            Kind        `json:"broadcast_type"`
	Days            []Day       `json:"days_of_week"`
	Hour            int         `json:"hour"`
	Minute          int         `json:"minute"`
	VibrationNumber string      `json:"vibration_number,omitempty"`
	VehicleNumber   string      `json:"vehicle_number,omitempty"`
	CustomText      string      `json:"custom_text,omitempty"`
	ClosingType     ClosingType `json:"closing_type,omitempty"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
	NextRun         *time.Time  `json:"next_run,omitempty"`
}

func (s Schedule) HasDay(d Day) bool {
	for _, day := range s.Days {
		if day == d {
			return true
		}
	}
	return false
}

// Announcement is what the schedule plays when it fires.
func (s Schedule) Announcement() Announcement {
	a := Announcement{Kind: s.Kind, Closing: s.ClosingType}
	switch s.Kind {
	case KindVibration:
		a.Number = s.VibrationNumber
	case KindVehicle:
		a.Number = s.VehicleNumber
	case KindCustom:
		a.Text = s.CustomText
	}
	return a
}

type Playlist struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AudioURL    string `json:"audio_url"`
	Artist      string `json:"artist,omitempty"`
	ArtworkURL  string `json:"artwork_url,omitempty"`
	VersionTag  string `json:"version_tag,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// Announcement is a single broadcast request, manual or scheduled.
type Announcement struct {
	Kind    Kind        `json:"broadcast_type"`
	Number  string      `json:"number,omitempty"`
	Text    string      `json:"text,omitempty"`
	Closing ClosingType `json:"closing_type,omitempty"`
}

type Status struct {
	Playing   bool          `json:"playing"`
	Message   string        `json:"status"`
	Current   *Announcement `json:"current,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type MusicState struct {
	Playlist *Playlist `json:"playlist"`
	Playing  bool      `json:"playing"`
}

type ChangeEvent struct {
	Type      string    `json:"type"`
	Table     string    `json:"table"`
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
