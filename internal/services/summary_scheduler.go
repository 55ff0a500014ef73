package services

import (
	"bytes"
	"io"

	"auction-house/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SummaryScheduler writes the end-of-day summary to a sink on a cron
// schedule. This schedules reporting only; auctions themselves are opened
// and closed by callers, never by a timer.
type SummaryScheduler struct {
	cron  *cron.Cron
	house *HouseService
	sink  io.Writer
	log   logger.Logger
}

func NewSummaryScheduler(house *HouseService, sink io.Writer, log logger.Logger) *SummaryScheduler {
	return &SummaryScheduler{
		cron:  cron.New(cron.WithSeconds()),
		house: house,
		sink:  sink,
		log:   log,
	}
}

// Start registers the summary job with the given six-field cron spec and
// starts the scheduler.
func (s *SummaryScheduler) Start(spec string) error {
	s.log.Info("Starting summary scheduler", "spec", spec)

	_, err := s.cron.AddFunc(spec, s.run)
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *SummaryScheduler) Stop() {
	s.log.Info("Stopping summary scheduler")
	s.cron.Stop()
}

func (s *SummaryScheduler) run() {
	var buf bytes.Buffer
	s.house.WriteEndOfDaySummary(&buf)

	if _, err := s.sink.Write(buf.Bytes()); err != nil {
		s.log.Error("Failed to write end of day summary", "error", err)
		return
	}
	s.log.Info("End of day summary generated", "bytes", buf.Len())
}
