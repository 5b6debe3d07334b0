package controller

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ChangeSubscriber hands out live change event feeds.
type ChangeSubscriber interface {
	Subscribe(buffer int) (<-chan entity.ChangeEvent, func())
}

// EventsController streams ledger changes as server-sent events.
type EventsController struct {
	subscriber ChangeSubscriber
	buffer     int
}

// NewEventsController creates a new events controller instance.
func NewEventsController(subscriber ChangeSubscriber, buffer int) *EventsController {
	return &EventsController{
		subscriber: subscriber,
		buffer:     buffer,
	}
}

// Stream handles GET /events requests. Each change is sent as an event named
// after its kind; the stream ends when the client disconnects.
func (c *EventsController) Stream(ctx *gin.Context) {
	events, cancel := c.subscriber.Subscribe(c.buffer)
	defer cancel()

	done := ctx.Request.Context().Done()
	ctx.Stream(func(_ io.Writer) bool {
		select {
		case <-done:
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			ctx.SSEvent(string(event.Kind), event)
			return true
		}
	})
}
