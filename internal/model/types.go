package model

// Dialogue is one extracted ASS dialogue event. Times are kept verbatim
// from the source (H:MM:SS.cc); Text keeps override tags and embedded
// commas untouched.
type Dialogue struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Text      string `json:"dialog"`
}
