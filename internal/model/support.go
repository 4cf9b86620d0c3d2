package model

// SupportResource is a static catalog entry in the parent support directory
type SupportResource struct {
	Slug         string
	Title        string
	Body         string
	ExternalLink string
}
