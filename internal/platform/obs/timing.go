package obs

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

var requestCounter atomic.Uint64

// WithRequestID attaches a process-unique request id to the context so
// per-operation timing lines can be correlated with the request log line.
func WithRequestID(ctx context.Context) (context.Context, string) {
	id := fmt.Sprintf("r%06d", requestCounter.Add(1))
	return context.WithValue(ctx, RequestIDKey, id), id
}

// Time logs the duration of the enclosing operation on return. Use it with
// a named error return:
//
//	defer obs.Time(ctx, "meetings.ListEligible")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
