// Package joblog consumes the live job-log channel of the Loom service.
// The channel is opaque to the session engine; only the jobs page uses it.
package joblog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/loomworks/loomctl/internal/logging"
)

// Streamer opens the raw log stream of a job. Satisfied by api.Client.
type Streamer interface {
	StreamJobLog(ctx context.Context, jobID string) (io.ReadCloser, error)
}

// Follow subscribes to the log stream of jobID and writes each log line to w
// until the stream ends or ctx is canceled. The wire format is server-sent
// events; only "data:" fields carry log payload, everything else (comments,
// event names, heartbeats) is skipped.
func Follow(ctx context.Context, s Streamer, jobID string, w io.Writer, log logging.Logger) error {
	rc, err := s.StreamJobLog(ctx, jobID)
	if err != nil {
		return fmt.Errorf("opening log stream for job %s: %w", jobID, err)
	}
	defer rc.Close()

	log.Debug(ctx, "following job log", "job_id", jobID)

	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		payload, ok := strings.CutPrefix(scanner.Text(), "data:")
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, strings.TrimPrefix(payload, " ")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		// a canceled context tears the connection down mid-read; report
		// that as cancellation, not a stream failure
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		return fmt.Errorf("reading log stream: %w", err)
	}
	return nil
}
