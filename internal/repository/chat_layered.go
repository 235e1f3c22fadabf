package repository

import (
	"context"
	"log"
	"sort"
	"time"

	"designdesk/infrastructure/cache"
	"designdesk/infrastructure/journal"
	"designdesk/internal/entity"

	"github.com/google/uuid"
)

// LayeredChatStore keeps project chat writable even when the primary store is
// unreachable: Mongo first, then a durable append-only journal, then a
// bounded in-memory buffer as last resort. A message is only reported lost if
// all three tiers fail.
type LayeredChatStore struct {
	primary ChatRepository
	journal *journal.Journal[entity.ChatMessage]
	buffer  *cache.Buffer[entity.ChatMessage]
}

func NewLayeredChatStore(primary ChatRepository, jl *journal.Journal[entity.ChatMessage], buffer *cache.Buffer[entity.ChatMessage]) *LayeredChatStore {
	return &LayeredChatStore{
		primary: primary,
		journal: jl,
		buffer:  buffer,
	}
}

func (s *LayeredChatStore) Create(ctx context.Context, message entity.ChatMessage) (entity.ChatMessage, error) {
	now := time.Now().UTC()
	message.Id = uuid.New().String()
	message.Timestamp = now
	message.CreatedAt = now

	if s.primary != nil {
		err := s.primary.Create(ctx, message)
		if err == nil {
			return message, nil
		}
		log.Printf("chat: primary store write failed, falling back to journal: %v", err)
	}

	if s.journal != nil {
		err := s.journal.Append(message)
		if err == nil {
			return message, nil
		}
		log.Printf("chat: journal write failed, falling back to memory: %v", err)
	}

	s.buffer.Append(message.ProjectId, message)
	return message, nil
}

func (s *LayeredChatStore) ListByProject(ctx context.Context, projectId string) ([]entity.ChatMessage, error) {
	if s.primary != nil {
		messages, err := s.primary.ListByProject(ctx, projectId)
		if err == nil {
			return messages, nil
		}
		log.Printf("chat: primary store read failed, falling back to journal: %v", err)
	}

	if s.journal != nil {
		records, err := s.journal.All()
		if err == nil {
			var messages []entity.ChatMessage
			for _, record := range records {
				if record.ProjectId == projectId {
					messages = append(messages, record)
				}
			}
			sort.Slice(messages, func(i, j int) bool {
				return messages[i].Timestamp.Before(messages[j].Timestamp)
			})
			return messages, nil
		}
		log.Printf("chat: journal read failed, falling back to memory: %v", err)
	}

	return s.buffer.List(projectId), nil
}

func (s *LayeredChatStore) DeleteByProject(ctx context.Context, projectId string) (int64, error) {
	var deleted int64
	var firstErr error

	if s.primary != nil {
		n, err := s.primary.DeleteByProject(ctx, projectId)
		if err != nil {
			firstErr = err
			log.Printf("chat: primary store delete failed: %v", err)
		}
		deleted += n
	}

	if s.journal != nil {
		n, err := s.journal.Compact(func(m entity.ChatMessage) bool {
			return m.ProjectId != projectId
		})
		if err != nil {
			log.Printf("chat: journal compact failed: %v", err)
		}
		deleted += int64(n)
	}

	deleted += int64(s.buffer.Drop(projectId))

	if deleted == 0 && firstErr != nil {
		return 0, firstErr
	}
	return deleted, nil
}
