package domain

// Station is one entry of the static station directory served to the front
// end. Stream playback itself happens client-side.
type Station struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	StreamURL   string   `json:"streamUrl"`
	ImageURL    string   `json:"imageUrl"`
	Genres      []string `json:"genres"`
	ZenoURL     string   `json:"zenoUrl,omitempty"`
}
