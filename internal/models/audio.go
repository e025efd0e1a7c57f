package models

// StoredAudio is an uploaded recording written to local storage
type StoredAudio struct {
	FileName  string
	FilePath  string
	PublicURL string
}
