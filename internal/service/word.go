package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"

	"github.com/lexloop/vocab_server/internal/logging"
	"github.com/lexloop/vocab_server/internal/models"
	"github.com/lexloop/vocab_server/internal/mykafka"
	"github.com/lexloop/vocab_server/internal/repo"
	"github.com/lexloop/vocab_server/internal/service/search"
	"github.com/lexloop/vocab_server/internal/transport"
)

type WordService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

func (s *WordService) CreateWord(ctx context.Context, ownerID uuid.UUID, req transport.CreateWordRequest) (*models.Word, error) {
	word := &models.Word{
		UserID:              ownerID,
		Words:               req.Words,
		Definitions:         req.Definitions,
		Images:              req.Images,
		Audio:               req.Audio,
		ListenHighScore:     req.ListenHighScore,
		ImageHighScore:      req.ImageHighScore,
		DefinitionHighScore: req.DefinitionHighScore,
	}

	created, err := s.Repo.CreateWord(ctx, word)
	if err != nil {
		return nil, err
	}

	s.publishWordEvent(ctx, "word_created", created)
	s.indexWord(ctx, created)

	return created, nil
}

func (s *WordService) GetWord(ctx context.Context, id uuid.UUID) (*models.Word, error) {
	return s.Repo.GetWord(ctx, id)
}

func (s *WordService) GetWordsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Word, error) {
	return s.Repo.GetWordsByOwner(ctx, ownerID)
}

func (s *WordService) UpdateWord(ctx context.Context, req transport.UpdateWordRequest, id uuid.UUID) (*models.Word, error) {
	word, err := s.Repo.UpdateWord(ctx, req, id)
	if err != nil {
		return nil, err
	}

	s.publishWordEvent(ctx, "word_updated", word)
	s.indexWord(ctx, word)

	return word, nil
}

func (s *WordService) DeleteWord(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteWord(ctx, id); err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("svc", "word.delete")
	if err := s.Producer.PublishEvent(ctx, "word_events", id.String(), map[string]any{
		"type": "word_deleted",
		"id":   id.String(),
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	if s.ES != nil {
		res, err := s.ES.Delete(s.Index, id.String(), s.ES.Delete.WithContext(ctx))
		if err != nil {
			l.Warn("index_delete_failed", "error", err)
		} else {
			res.Body.Close()
		}
	}

	return nil
}

func (s *WordService) SearchWords(ctx context.Context, query string, from, size int) (int64, []search.WordDoc, error) {
	if s.ES == nil {
		return 0, nil, errors.New("search index is not configured")
	}
	return search.Search(ctx, s.ES, s.Index, query, from, size)
}

func (s *WordService) publishWordEvent(ctx context.Context, eventType string, word *models.Word) {
	l := logging.FromContext(ctx).With("svc", "word.events")
	if err := s.Producer.PublishEvent(ctx, "word_events", word.ID.String(), map[string]any{
		"type":    eventType,
		"id":      word.ID.String(),
		"user_id": word.UserID.String(),
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}
}

// indexWord upserts the word into the search index. Indexing is
// best-effort: a search that lags the store is acceptable, a failed
// write is not.
func (s *WordService) indexWord(ctx context.Context, word *models.Word) {
	if s.ES == nil {
		return
	}

	l := logging.FromContext(ctx).With("svc", "word.index")
	doc := search.WordDoc{
		ID:          word.ID,
		UserID:      word.UserID,
		Words:       word.Words,
		Definitions: word.Definitions,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		l.Warn("index_failed", "error", err)
		return
	}

	res, err := s.ES.Index(
		s.Index,
		bytes.NewReader(data),
		s.ES.Index.WithDocumentID(word.ID.String()),
		s.ES.Index.WithContext(ctx),
	)
	if err != nil {
		l.Warn("index_failed", "error", err)
		return
	}
	res.Body.Close()
}
