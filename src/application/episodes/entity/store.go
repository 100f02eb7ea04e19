package entity

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type EpisodeUpdater func(episode Episode) (Episode, error)

//counterfeiter:generate . EpisodeStore
type EpisodeStore interface {
	// UpdateEpisode applies updater to the stored episode, or to an empty
	// one carrying guid if nothing is stored yet.
	UpdateEpisode(ctx context.Context, guid string, updater EpisodeUpdater) error
}
