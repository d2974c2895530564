package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ribgsilva/notes-app/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Consume receives note events until ctx is cancelled or the subscription fails, applying
// at most maxWorkers of them at the same time. Every message is acked, failures are only logged.
func Consume(ctx context.Context, log *zap.SugaredLogger, core *note.Core, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers < 1 {
		return fmt.Errorf("max workers must be at least 1, got %d", maxWorkers)
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var m *pubsub.Message
		m, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			log.Infof("message received: %s", string(m.Body))
			// a message already taken is applied even if ctx is cancelled meanwhile
			if err := apply(context.WithoutCancel(ctx), core, m.Body); err != nil {
				log.Errorw("failed to apply message", "body", string(m.Body), "ERROR", err)
			}
		}(m)
	}

	// wait for the running workers
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func apply(ctx context.Context, core *note.Core, body []byte) error {
	var m note.Event
	if err := json.Unmarshal(body, &m); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch m.Type {
	case note.EventCreate:
		var nn note.NewNote
		if err := json.Unmarshal(m.Data, &nn); err != nil {
			return fmt.Errorf("failed to parse create data: %w", err)
		}
		_, err := core.Create(ctx, nn)
		return err
	case note.EventUpdate:
		var ue note.UpdateEvent
		if err := json.Unmarshal(m.Data, &ue); err != nil {
			return fmt.Errorf("failed to parse update data: %w", err)
		}
		_, err := core.Update(ctx, ue.ID, ue.UpdateNote)
		return err
	case note.EventDelete:
		var de note.DeleteEvent
		if err := json.Unmarshal(m.Data, &de); err != nil {
			return fmt.Errorf("failed to parse delete data: %w", err)
		}
		return core.Delete(ctx, de.ID)
	default:
		return fmt.Errorf("unknown event type: %q", m.Type)
	}
}
