package store

import (
	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/Iron-Ham/hubdeck/internal/panel"
	"github.com/Iron-Ham/hubdeck/internal/tristate"
)

var _ panel.Mutations = (*Store)(nil)

// report logs a failed mutation. Panels dispatch fire-and-forget, so the log
// is the only place the failure surfaces.
func (s *Store) report(op, columnID string, err error) {
	if err != nil {
		s.logger.Error("mutation failed", "op", op, "column_id", columnID, "error", err.Error())
	}
}

// SetParticipating stores the inbox filter. True keeps participating
// threads, False keeps the "All" marker and Unset clears the filter.
func (s *Store) SetParticipating(columnID string, v tristate.Bool) {
	s.report("set_participating", columnID, s.UpdateFilters(columnID, func(f column.Filters) column.Filters {
		f.Participating = v
		return f
	}))
}

func (s *Store) SetSaved(columnID string, v tristate.Bool) {
	s.report("set_saved", columnID, s.UpdateFilters(columnID, func(f column.Filters) column.Filters {
		f.Saved = v
		return f
	}))
}

func (s *Store) SetUnread(columnID string, v tristate.Bool) {
	s.report("set_unread", columnID, s.UpdateFilters(columnID, func(f column.Filters) column.Filters {
		f.Unread = v
		return f
	}))
}

func (s *Store) SetPrivacy(columnID string, v tristate.Bool) {
	s.report("set_privacy", columnID, s.UpdateFilters(columnID, func(f column.Filters) column.Filters {
		f.Private = v
		return f
	}))
}

func (s *Store) SetSubjectType(columnID, key string, v tristate.Bool) {
	s.report("set_subject_type", columnID, s.UpdateFilters(columnID, func(f column.Filters) column.Filters {
		f.SubjectTypes = f.SubjectTypes.With(key, v)
		return f
	}))
}

func (s *Store) SetNotificationReason(columnID, key string, v tristate.Bool) {
	s.report("set_notification_reason", columnID, s.UpdateFilters(columnID, func(f column.Filters) column.Filters {
		f.Reasons = f.Reasons.With(key, v)
		return f
	}))
}

func (s *Store) SetActivityAction(columnID, key string, v tristate.Bool) {
	s.report("set_activity_action", columnID, s.UpdateFilters(columnID, func(f column.Filters) column.Filters {
		f.Actions = f.Actions.With(key, v)
		return f
	}))
}

func (s *Store) MoveColumn(columnID string, index int) {
	s.report("move_column", columnID, s.Move(columnID, index))
}

func (s *Store) DeleteColumn(columnID string) {
	s.report("delete_column", columnID, s.Remove(columnID))
}
