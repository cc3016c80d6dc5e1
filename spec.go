package airportfta

import "math"

// MaxYear is the last year a game can reach; specs that never expire use it.
const MaxYear = 5_000_000

// AirportSpec describes when and where an airport type can be built.
type AirportSpec struct {
	Name            string `json:"name" yaml:"name"`
	Width           int    `json:"width" yaml:"width"`
	Height          int    `json:"height" yaml:"height"`
	NoiseLevel      int    `json:"noise_level" yaml:"noise_level"`
	CatchmentRadius int    `json:"catchment_radius" yaml:"catchment_radius"`
	MinYear         int    `json:"min_year" yaml:"min_year"`
	MaxYear         int    `json:"max_year" yaml:"max_year"`
	Enabled         bool   `json:"enabled" yaml:"enabled"`
}

// IsAvailable reports whether the airport can be built in year. With
// neverExpire set an airport stays available once introduced.
func (s *AirportSpec) IsAvailable(year int, neverExpire bool) bool {
	if !s.Enabled {
		return false
	}
	if year < s.MinYear {
		return false
	}
	if neverExpire {
		return true
	}
	return year <= s.MaxYear
}

var defaultSpecs = [NumAirportTypes]AirportSpec{
	Country:          {Name: "country", Width: 4, Height: 3, NoiseLevel: 3, CatchmentRadius: 3, MinYear: 0, MaxYear: 1959, Enabled: true},
	City:             {Name: "city", Width: 6, Height: 6, NoiseLevel: 5, CatchmentRadius: 4, MinYear: 1955, MaxYear: MaxYear, Enabled: true},
	Heliport:         {Name: "heliport", Width: 1, Height: 1, NoiseLevel: 1, CatchmentRadius: 4, MinYear: 1963, MaxYear: MaxYear, Enabled: true},
	Metropolitan:     {Name: "metropolitan", Width: 6, Height: 6, NoiseLevel: 6, CatchmentRadius: 4, MinYear: 1980, MaxYear: MaxYear, Enabled: true},
	International:    {Name: "international", Width: 7, Height: 7, NoiseLevel: 8, CatchmentRadius: 5, MinYear: 1990, MaxYear: MaxYear, Enabled: true},
	Commuter:         {Name: "commuter", Width: 5, Height: 4, NoiseLevel: 4, CatchmentRadius: 4, MinYear: 1983, MaxYear: MaxYear, Enabled: true},
	Helidepot:        {Name: "helidepot", Width: 2, Height: 2, NoiseLevel: 2, CatchmentRadius: 4, MinYear: 1976, MaxYear: MaxYear, Enabled: true},
	Intercontinental: {Name: "intercontinental", Width: 9, Height: 11, NoiseLevel: 10, CatchmentRadius: 10, MinYear: 2002, MaxYear: MaxYear, Enabled: true},
	Helistation:      {Name: "helistation", Width: 4, Height: 2, NoiseLevel: 3, CatchmentRadius: 4, MinYear: 1980, MaxYear: MaxYear, Enabled: true},
	Oilrig:           {Name: "oilrig", Width: 1, Height: 1, NoiseLevel: 0, CatchmentRadius: 4, MinYear: 0, MaxYear: MaxYear, Enabled: false},
	Dummy:            {Name: "dummy", Width: 0, Height: 0, NoiseLevel: 0, CatchmentRadius: 0, MinYear: math.MinInt32, MaxYear: MaxYear, Enabled: false},
}
