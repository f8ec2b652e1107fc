package config

import (
	"encoding/json"
	"fmt"
	"os"

	"antena/domain"
)

// loadStations reads the station directory from a JSON file when configured,
// falling back to the built-in station list.
func loadStations(file string) ([]domain.Station, error) {
	if file == "" {
		return defaultStations(), nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read stations file %s: %w", file, err)
	}

	var stations []domain.Station
	if err := json.Unmarshal(content, &stations); err != nil {
		return nil, fmt.Errorf("failed to parse stations file %s: %w", file, err)
	}

	if len(stations) == 0 {
		return nil, fmt.Errorf("stations file %s contains no stations", file)
	}

	return stations, nil
}

func defaultStations() []domain.Station {
	return []domain.Station{
		{
			ID:          "romantica",
			Name:        "Radio Romántica USS",
			Description: "Baladas en español",
			StreamURL:   "https://stream.zeno.fm/fcocpujtg6kuv",
			ImageURL:    "https://images.zeno.fm/krx4WHsrRUiQIs6hskwbNITNj-hfFBnW3AkspfIu7tU/rs:fit:170:170/g:ce:0:0/aHR0cHM6Ly9zdHJlYW0tdG9vbHMuemVub21lZGlhLmNvbS9jb250ZW50L3N0YXRpb25zLzcxNjljYWE3LWI3NGYtNDE2Zi04ZTEwLTJkN2Q3Y2E3M2RmMC9pbWFnZS8_dT0xNzU0NTQ1Mzg1NTIz.webp",
			Genres:      []string{"Baladas", "Romántica", "Pop latino"},
			ZenoURL:     "https://zeno.fm/radio/radio-romantica-uss/",
		},
		{
			ID:          "folclore",
			Name:        "Folclore peruano",
			Description: "Música andina y huayno",
			StreamURL:   "https://stream.zeno.fm/2cryaopfrl2tv",
			ImageURL:    "https://images.zeno.fm/2iVyMBTlcTBDNr2Io4GFtnjJBWY9G5G7va3oqNiABlQ/rs:fit:170:170/g:ce:0:0/aHR0cHM6Ly9zdHJlYW0tdG9vbHMuemVub21lZGlhLmNvbS9jb250ZW50L3N0YXRpb25zLzk1MjNlMmQyLTM4YzAtNGJlNC1hZWQwLTVmNjE0OTFmMmRkNS9pbWFnZS8_dT0xNzU0NTQ2MjgzMTMx.webp",
			Genres:      []string{"Huayno", "Andina", "Folclore"},
			ZenoURL:     "https://zeno.fm/radio/radio-folclore-gvbk/",
		},
		{
			ID:          "sabor",
			Name:        "Radio Sabor",
			Description: "Ritmos tropicales 24/7",
			StreamURL:   "https://stream.zeno.fm/gveyphbr9jpuv",
			ImageURL:    "https://zeno.fm/_ipx/_/https://images.zeno.fm/aRRhtW-Aj-Y418EJ-BPdEvqqIGmmwNvxit5l2ywb-7s/rs:fill:288:288/g:ce:0:0/aHR0cHM6Ly9wcm94eS56ZW5vLmZtL2NvbnRlbnQvc3RhdGlvbnMvZGQ0Mjk4MGQtODY4NC00OGMwLTlmYTUtNDI4MTY3ZGVmZjJlL2ltYWdlLz91PTE3NDQwMzk3MzQwMDA.webp",
			Genres:      []string{"Salsa", "Cumbia", "Merengue"},
			ZenoURL:     "https://zeno.fm/radio/radio-sabor-uss/",
		},
		{
			ID:          "rockpop",
			Name:        "Radio Rock & Pop",
			Description: "Clásicos de rock and roll y pop",
			StreamURL:   "https://stream.zeno.fm/vth96t3szc9uv",
			ImageURL:    "https://images.zeno.fm/D2LY5HHog1syxJ9KiyT4yFF1eR5aNcpqheZnI-A0dRk/rs:fit:170:170/g:ce:0:0/aHR0cHM6Ly9zdHJlYW0tdG9vbHMuemVub21lZGlhLmNvbS9jb250ZW50L3N0YXRpb25zL2FneHpmbnBsYm04dGMzUmhkSE55TWdzU0NrRjFkR2hEYkdsbGJuUVlnSUR3Z2FyQTVBc01DeElPVTNSaGRHbHZibEJ5YjJacGJHVVlnSUR3OGN5RnB3c01vZ0VFZW1WdWJ3L2ltYWdlLz91PTE3NTQ5NTkzOTM2NzU.webp",
			Genres:      []string{"Rock and roll", "Pop"},
			ZenoURL:     "https://zeno.fm/radio/ussradiochiclayo/",
		},
	}
}
