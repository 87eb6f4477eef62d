package types

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	PodcastClient PodcastClient
}
