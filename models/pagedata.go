package models

type PageData struct {
	Name      string
	Flash     string
	FlashKind string
	CSRFtoken string
}
