package dummy

import (
	"context"
	"freecast-workers/src/application/episodes/entity"
	"sync"
)

var _ entity.EpisodeStore = &EpisodeStore{}

func NewDummyEpisodeStore() *EpisodeStore {
	return &EpisodeStore{
		Unavailable: false,
		State:       make(map[string]entity.Episode),
	}
}

type EpisodeStore struct {
	Unavailable bool
	State       map[string]entity.Episode
	mutex       sync.RWMutex
}

func (e *EpisodeStore) GetEpisode(_ context.Context, guid string) (entity.Episode, error) {
	if e.Unavailable {
		return entity.Episode{}, NetworkFailure
	}

	e.mutex.RLock()
	defer e.mutex.RUnlock()

	episode, ok := e.State[guid]
	if !ok {
		return entity.Episode{}, NotFound
	}

	return episode, nil
}

func (e *EpisodeStore) UpdateEpisode(_ context.Context, guid string, updater entity.EpisodeUpdater) error {
	if e.Unavailable {
		return NetworkFailure
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	episode, ok := e.State[guid]
	if !ok {
		episode = entity.Episode{GUID: guid}
	}

	updated, err := updater(episode)
	if err != nil {
		return err
	}

	updated.GUID = guid
	e.State[guid] = updated

	return nil
}
