package service

import (
	"context"
	"encoding/json"
	"log"

	"boum-cafe/menu-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer follows the menus change feed and wakes board subscribers.
type Consumer struct {
	Reader MessageReader
	Cache  BoardCache
	Hub    *Hub
}

func NewConsumer(reader MessageReader, cache BoardCache, hub *Hub) *Consumer {
	return &Consumer{
		Reader: reader,
		Cache:  cache,
		Hub:    hub,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[menu-svc] starting menus change feed consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[menu-svc] error reading change feed: %v", err)
			continue
		}

		var event domain.ChangeEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[menu-svc] error unmarshaling change event: %v", err)
			continue
		}
		c.ProcessChange(ctx, event)
	}
}

func (c *Consumer) ProcessChange(ctx context.Context, event domain.ChangeEvent) {
	if event.Table != menusTable {
		return
	}
	if c.Cache != nil {
		if err := c.Cache.Invalidate(ctx); err != nil {
			log.Printf("[menu-svc] failed to invalidate board cache: %v", err)
		}
	}
	if c.Hub != nil {
		c.Hub.Notify()
	}
}
