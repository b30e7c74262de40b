// internal/app/polling_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/delivery"
	"homework_status_bot/internal/domain/homework"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PollingService runs one poll-evaluate-notify cycle per call.
// The scheduler is responsible for calling it on a fixed interval.
type PollingService interface {
	RunCycle(ctx context.Context)
}

// PollState is everything carried from one cycle to the next.
// It lives only in memory; a restart begins from the current time with empty caches.
type PollState struct {
	Cursor      int64  // from_date for the next request, unix seconds
	LastMessage string // last status text delivered
	LastError   string // last failure alert delivered
}

// PollingServiceImpl implements the PollingService interface.
type PollingServiceImpl struct {
	api      homework.StatusAPI
	notifier *Notifier
	journal  delivery.Repository // Optional, may be nil
	logger   *logrus.Entry
	state    PollState
}

func NewPollingServiceImpl(
	api homework.StatusAPI,
	notifier *Notifier,
	journal delivery.Repository,
	logger *logrus.Entry,
	startedAt time.Time,
) *PollingServiceImpl {
	return &PollingServiceImpl{
		api:      api,
		notifier: notifier,
		journal:  journal,
		logger:   logger.WithField("component", "polling_service"),
		state:    PollState{Cursor: startedAt.Unix()},
	}
}

// State returns a copy of the current poll state.
func (s *PollingServiceImpl) State() PollState {
	return s.state
}

// RunCycle polls once and stores the resulting state. Failures never escape:
// they are turned into a deduplicated alert and the next cycle starts from the same cursor.
func (s *PollingServiceImpl) RunCycle(ctx context.Context) {
	cycleID := uuid.New()
	logCtx := s.logger.WithFields(logrus.Fields{"cycle_id": cycleID, "cursor": s.state.Cursor})
	s.state = s.runCycle(ctx, logCtx, cycleID, s.state)
}

func (s *PollingServiceImpl) runCycle(ctx context.Context, logCtx *logrus.Entry, cycleID uuid.UUID, st PollState) PollState {
	next, err := s.poll(ctx, logCtx, cycleID, st)
	if err == nil {
		return next
	}
	if ctx.Err() != nil {
		logCtx.WithError(err).Info("Polling cycle interrupted by shutdown")
		return next
	}
	return s.reportFailure(ctx, logCtx, cycleID, next, err)
}

// poll performs fetch, validate, format and notify. On error the returned
// state still has the old cursor.
func (s *PollingServiceImpl) poll(ctx context.Context, logCtx *logrus.Entry, cycleID uuid.UUID, st PollState) (PollState, error) {
	logCtx.Debug("Requesting homework statuses")
	payload, err := s.api.FetchStatuses(ctx, st.Cursor)
	if err != nil {
		return st, err
	}
	logCtx.Debug("Homework statuses received")

	homeworks, err := homework.Validate(payload)
	if err != nil {
		return st, err
	}

	if len(homeworks) == 0 {
		logCtx.Debug("No homework updates since last poll")
	} else {
		// The API lists the most recently updated homework first.
		text, err := homework.FormatStatus(homeworks[0])
		if err != nil {
			return st, err
		}
		if text == st.LastMessage {
			logCtx.WithField("text", text).Debug("Homework status unchanged, skipping notification")
		} else {
			if err := s.notifier.Notify(text); err != nil {
				return st, err
			}
			st.LastMessage = text
			s.recordDelivery(ctx, logCtx, cycleID, delivery.KindStatus, text)
		}
	}

	if ts, ok := homework.CurrentDate(payload); ok {
		st.Cursor = ts
	} else {
		logCtx.Warn("Response has no usable current_date, cursor left unchanged")
	}
	return st, nil
}

// reportFailure alerts the chat about err unless the identical alert was the
// last one delivered. A failed alert is only logged.
func (s *PollingServiceImpl) reportFailure(ctx context.Context, logCtx *logrus.Entry, cycleID uuid.UUID, st PollState, err error) PollState {
	alert := fmt.Sprintf("Сбой в работе программы: %v", err)
	logCtx.WithError(err).Error("Polling cycle failed")

	if alert == st.LastError {
		logCtx.Debug("Failure already reported, skipping alert")
		return st
	}
	if sendErr := s.notifier.Notify(alert); sendErr != nil {
		logCtx.WithError(sendErr).WithField("cycle_error", err.Error()).Error("Failed to deliver failure alert")
		return st
	}
	st.LastError = alert
	s.recordDelivery(ctx, logCtx, cycleID, delivery.KindAlert, alert)
	return st
}

func (s *PollingServiceImpl) recordDelivery(ctx context.Context, logCtx *logrus.Entry, cycleID uuid.UUID, kind delivery.Kind, text string) {
	if s.journal == nil {
		return
	}
	rec := &delivery.Record{
		ID:      uuid.New(),
		CycleID: cycleID,
		Kind:    kind,
		ChatID:  s.notifier.ChatID(),
		Text:    text,
		SentAt:  time.Now(),
	}
	if err := s.journal.Save(ctx, rec); err != nil {
		logCtx.WithError(err).Warn("Failed to record delivered message in journal")
	}
}
