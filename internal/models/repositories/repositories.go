package repositories

// SeedEvent is the storage shape of a fixture event as it appears in the
// embedded seed file. Dates are relative (DaysFromNow) so the seeded
// schedule always sits in the near future.
type SeedEvent struct {
	Title       string   `json:"title"`
	Organizer   string   `json:"organizer"`
	DaysFromNow int      `json:"days_from_now"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Location    string   `json:"location"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
}
