package service

import (
	"context"
	"encoding/json"
	"log"

	"boum-cafe/broadcast-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Reloader interface {
	Reload(ctx context.Context) error
}

// Consumer reloads the trigger whenever any instance changes the schedules.
type Consumer struct {
	Reader   MessageReader
	Reloader Reloader
}

func NewConsumer(reader MessageReader, reloader Reloader) *Consumer {
	return &Consumer{Reader: reader, Reloader: reloader}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[broadcast-svc] starting schedules change feed consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[broadcast-svc] error reading change feed: %v", err)
			continue
		}

		var event domain.ChangeEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[broadcast-svc] error unmarshaling change event: %v", err)
			continue
		}
		if err := c.ProcessChange(ctx, event); err != nil {
			log.Printf("[broadcast-svc] error reloading schedules: %v", err)
		}
	}
}

func (c *Consumer) ProcessChange(ctx context.Context, event domain.ChangeEvent) error {
	if event.Table != schedulesTable {
		return nil
	}
	return c.Reloader.Reload(ctx)
}
